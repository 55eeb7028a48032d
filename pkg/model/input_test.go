package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDirectory = "testdata/"

func TestScenarioFromFile(t *testing.T) {
	for _, file := range []string{"scenario.json", "scenario.yaml"} {
		t.Run(file, func(t *testing.T) {
			//** Act
			scenario, err := ScenarioFromFile(testDirectory + file)

			//** Assert
			require.NoError(t, err)
			assert.Equal(t, 2021, scenario.Population.ReferenceYear())
			assert.Equal(t, 28, scenario.Population.Total())
			assert.Equal(t, []CandidateSpec{
				{Kind: Homogeneous, Ages: []int{0, 1}, Size: SizeBounds{Min: 9, Max: 12}},
				{Kind: Heterogeneous, Ages: []int{0, 1, 2}, Size: SizeBounds{Min: 7, Max: 10}, ExceptionRequested: true},
			}, scenario.Candidates)
			assert.Equal(t, []Combination{
				{Name: "mixed nursery", Candidates: []int{1}},
				{Name: "combination 1", Candidates: []int{0, 4}},
			}, scenario.Combinations)
		})
	}
}

func TestScenarioFromFileErrors(t *testing.T) {
	t.Run("Invalid input", func(t *testing.T) {
		for _, file := range []string{"invalid_size.yaml", "negative_count.json"} {
			_, err := ScenarioFromFile(testDirectory + file)
			assert.True(t, errors.Is(err, ErrInvalidInput), "file %v: %v", file, err)
		}
	})

	t.Run("Fractional numbers", func(t *testing.T) {
		for _, file := range []string{"fractional_count.json", "fractional_size.json", "fractional_size.yaml"} {
			//** Act
			_, err := RawScenarioFromFile(testDirectory + file)

			//** Assert
			assert.True(t, errors.Is(err, ErrInvalidInput), "file %v: %v", file, err)
		}
	})

	t.Run("Whole floats", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "scenario.yaml")
		content := "referenceYear: 2021.0\npopulation:\n  - {birthYear: 2021, count: 3.0}\n"
		require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

		rawScenario, err := RawScenarioFromFile(file)

		require.NoError(t, err)
		assert.Equal(t, 2021, rawScenario.ReferenceYear)
		assert.Equal(t, 3, rawScenario.Population[0].Count)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := ScenarioFromFile(testDirectory + "missing.json")
		assert.Error(t, err)
	})
}

func TestProcessRawScenario(t *testing.T) {
	valid := func() RawScenario {
		return RawScenario{
			ReferenceYear: 2021,
			Population:    []RawPopulationEntry{{BirthYear: 2020, Count: 3}},
			Candidates:    []RawCandidate{{Kind: "combined", Ages: []int{0, 1}, Size: []int{1, 3}}},
		}
	}

	t.Run("Correct flow", func(t *testing.T) {
		scenario, err := ProcessRawScenario(valid())

		require.NoError(t, err)
		assert.Equal(t, Combined, scenario.Candidates[0].Kind)
		assert.Empty(t, scenario.Combinations)
	})

	t.Run("Invalid input", func(t *testing.T) {
		mutations := []func(*RawScenario){
			func(raw *RawScenario) { raw.Population = nil },
			func(raw *RawScenario) { raw.Population[0].Count = -1 },
			func(raw *RawScenario) { raw.Population[0].BirthYear = 2022 },
			func(raw *RawScenario) { raw.Candidates[0].Kind = "mixed" },
			func(raw *RawScenario) { raw.Candidates[0].Ages = []int{} },
			func(raw *RawScenario) { raw.Candidates[0].Size = []int{3} },
			func(raw *RawScenario) { raw.Candidates[0].Size = []int{0, 3} },
			func(raw *RawScenario) { raw.Candidates[0].Size = []int{4, 3} },
			func(raw *RawScenario) {
				raw.Combinations = []RawCombination{{Name: "nothing"}}
			},
		}

		for i, mutate := range mutations {
			raw := valid()
			mutate(&raw)

			_, err := ProcessRawScenario(raw)

			assert.True(t, errors.Is(err, ErrInvalidInput), "mutation %d: %v", i, err)
		}
	})
}

func TestDefaultScenario(t *testing.T) {
	scenario := DefaultScenario()

	assert.Equal(t, 79, scenario.Population.Total())
	assert.Len(t, scenario.Candidates, 29)
	assert.Len(t, scenario.Combinations, 6)
	for _, entry := range scenario.Population.Entries() {
		assert.Equal(t, 2021-entry.BirthYear, entry.Age)
	}
}
