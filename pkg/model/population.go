package model

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

type PopulationEntry struct {
	BirthYear int
	Count     int
	Age       int
}

// Population holds the kids of every generation. It is built once and read-only afterwards, it is not safe for concurrent use
type Population struct {
	referenceYear int
	entries       []PopulationEntry
}

func NewPopulation(referenceYear int) *Population {
	return &Population{referenceYear: referenceYear}
}

// Appends a generation; its age is derived from the reference year only here
func (population *Population) Add(birthYear, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: generation %d has a negative number of kids (%d)", ErrInvalidInput, birthYear, count)
	} else if birthYear > population.referenceYear {
		return fmt.Errorf("%w: generation %d is born after the reference year %d", ErrInvalidInput, birthYear, population.referenceYear)
	}

	population.entries = append(population.entries, PopulationEntry{
		BirthYear: birthYear,
		Count:     count,
		Age:       population.referenceYear - birthYear,
	})
	return nil
}

// Sum of kids whose age lies in [minAge, maxAge]
func (population *Population) CountInAgeRange(minAge, maxAge int) int {
	return lo.SumBy(population.entries, func(entry PopulationEntry) int {
		return lo.Ternary(entry.Age >= minAge && entry.Age <= maxAge, entry.Count, 0)
	})
}

// Sum of kids whose age is one of ages
func (population *Population) CountForAges(ages []int) int {
	return lo.SumBy(population.entries, func(entry PopulationEntry) int {
		return lo.Ternary(slices.Contains(ages, entry.Age), entry.Count, 0)
	})
}

func (population *Population) Total() int {
	return lo.SumBy(population.entries, func(entry PopulationEntry) int { return entry.Count })
}

func (population *Population) ReferenceYear() int {
	return population.referenceYear
}

func (population *Population) Entries() []PopulationEntry {
	return slices.Clone(population.entries)
}
