package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type RawPopulationEntry struct {
	BirthYear int `mapstructure:"birthYear" validate:"required"`
	Count     int `mapstructure:"count" validate:"gte=0"`
}

type RawCandidate struct {
	Kind      string `mapstructure:"kind" validate:"required"`
	Ages      []int  `mapstructure:"ages" validate:"required,min=1,dive,gte=0"`
	Size      []int  `mapstructure:"size" validate:"len=2,dive,gt=0"` // [min, max]
	Exception bool   `mapstructure:"exception"`
}

type RawCombination struct {
	Name       string `mapstructure:"name"`
	Candidates []int  `mapstructure:"candidates" validate:"required,min=1"`
}

type RawScenario struct {
	ReferenceYear int                  `mapstructure:"referenceYear" validate:"required"`
	Population    []RawPopulationEntry `mapstructure:"population" validate:"required,min=1,dive"`
	Candidates    []RawCandidate       `mapstructure:"candidates" validate:"dive"`
	Combinations  []RawCombination     `mapstructure:"combinations" validate:"dive"`
}

// Inputs of one planning session, ready to be handed to the evaluator and the aggregator
type Scenario struct {
	Population   *Population
	Candidates   []CandidateSpec
	Combinations []Combination
}

// Reads a scenario from a JSON or YAML file, chosen by extension
func ScenarioFromFile(file string) (Scenario, error) {
	rawScenario, err := RawScenarioFromFile(file)
	if err != nil {
		return Scenario{}, err
	}
	return ProcessRawScenario(rawScenario)
}

func RawScenarioFromFile(file string) (RawScenario, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return RawScenario{}, fmt.Errorf("cannot read scenario file: %w", err)
	}

	var inputMap map[string]any
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &inputMap)
	default:
		// Numbers are kept as json.Number so that mapstructure refuses fractional values for int fields
		decoder := json.NewDecoder(bytes.NewReader(content))
		decoder.UseNumber()
		err = decoder.Decode(&inputMap)
	}
	if err != nil {
		return RawScenario{}, fmt.Errorf("cannot parse scenario file %v: %w", file, err)
	}

	var rawScenario RawScenario
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: integralNumberHook,
		Result:     &rawScenario,
	})
	if err != nil {
		return RawScenario{}, fmt.Errorf("cannot build scenario decoder: %w", err)
	}
	if err := decoder.Decode(inputMap); err != nil {
		return RawScenario{}, fmt.Errorf("%w: cannot decode scenario file %v: %v", ErrInvalidInput, file, err)
	}
	return rawScenario, nil
}

// YAML decodes every non-integer number as a float; those must not be truncated into int fields
func integralNumberHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int || (from.Kind() != reflect.Float64 && from.Kind() != reflect.Float32) {
		return data, nil
	}
	if value := reflect.ValueOf(data).Float(); value != math.Trunc(value) {
		return nil, fmt.Errorf("%v is not an integer", data)
	}
	return data, nil
}

func ProcessRawScenario(rawScenario RawScenario) (Scenario, error) {
	if err := validator.New().Struct(rawScenario); err != nil {
		return Scenario{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	//** Manage population
	population := NewPopulation(rawScenario.ReferenceYear)
	for _, entry := range rawScenario.Population {
		if err := population.Add(entry.BirthYear, entry.Count); err != nil {
			return Scenario{}, err
		}
	}

	//** Manage candidates
	candidates := make([]CandidateSpec, 0, len(rawScenario.Candidates))
	for i, rawCandidate := range rawScenario.Candidates {
		kind, err := ParseGroupKind(rawCandidate.Kind)
		if err != nil {
			return Scenario{}, fmt.Errorf("candidate %d: %w", i, err)
		}

		candidate := CandidateSpec{
			Kind:               kind,
			Ages:               rawCandidate.Ages,
			Size:               SizeBounds{Min: rawCandidate.Size[0], Max: rawCandidate.Size[1]},
			ExceptionRequested: rawCandidate.Exception,
		}
		if err := candidate.validate(); err != nil {
			return Scenario{}, fmt.Errorf("candidate %d: %w", i, err)
		}
		candidates = append(candidates, candidate)
	}

	//** Manage combinations
	// References are not checked here: a dangling one only fails its own combination during aggregation
	combinations := lo.Map(rawScenario.Combinations, func(rawCombination RawCombination, i int) Combination {
		return Combination{
			Name:       lo.Ternary(rawCombination.Name != "", rawCombination.Name, fmt.Sprintf("combination %d", i)),
			Candidates: rawCombination.Candidates,
		}
	})

	return Scenario{
		Population:   population,
		Candidates:   candidates,
		Combinations: combinations,
	}, nil
}

func DefaultScenario() Scenario {
	return lo.Must(ProcessRawScenario(DefaultRawScenario()))
}

// Scenario of the 2021 planning session
func DefaultRawScenario() RawScenario {
	homogeneous := func(ages []int, minSize, maxSize int, exception bool) RawCandidate {
		return RawCandidate{Kind: "homogeneous", Ages: ages, Size: []int{minSize, maxSize}, Exception: exception}
	}

	return RawScenario{
		ReferenceYear: 2021,
		Population: []RawPopulationEntry{
			{BirthYear: 2021, Count: 5},
			{BirthYear: 2020, Count: 8},
			{BirthYear: 2019, Count: 15},
			{BirthYear: 2018, Count: 11},
			{BirthYear: 2017, Count: 24},
			{BirthYear: 2016, Count: 15},
			{BirthYear: 2015, Count: 1},
			{BirthYear: 2014, Count: 0},
		},
		Candidates: []RawCandidate{
			homogeneous([]int{0, 1}, 9, 12, false), // 0
			homogeneous([]int{1, 2}, 9, 12, false),
			homogeneous([]int{0, 0}, 9, 12, false),
			homogeneous([]int{1, 1}, 9, 12, false),
			homogeneous([]int{2, 2}, 9, 12, false),
			homogeneous([]int{3, 4}, 12, 17, false), // 5
			homogeneous([]int{4, 5}, 17, 22, false),
			homogeneous([]int{5, 6}, 17, 22, false),
			homogeneous([]int{6, 7}, 17, 22, false),
			homogeneous([]int{3}, 17, 22, false),
			homogeneous([]int{4}, 17, 22, false), // 10
			homogeneous([]int{5}, 17, 22, false),
			homogeneous([]int{6}, 17, 22, false),
			homogeneous([]int{7}, 17, 22, false),
			homogeneous([]int{0, 1, 2}, 9, 12, true),
			homogeneous([]int{3, 4, 5}, 12, 17, true), // 15
			homogeneous([]int{3, 4, 5}, 17, 22, true),
			homogeneous([]int{3, 4, 5, 6}, 12, 17, true),
			homogeneous([]int{3, 4, 5, 6}, 17, 22, true),
			homogeneous([]int{3, 4, 5, 6, 7}, 12, 17, true),
			homogeneous([]int{3, 4, 5, 6, 7}, 17, 22, true), // 20
			homogeneous([]int{4, 5, 6}, 17, 22, true),
			homogeneous([]int{4, 5, 6, 7}, 12, 17, true),
			homogeneous([]int{5, 6, 7}, 17, 22, true),
			{Kind: "heterogeneous", Ages: []int{0, 1, 2}, Size: []int{7, 10}},
			{Kind: "heterogeneous", Ages: []int{3, 4, 5, 6, 7}, Size: []int{14, 19}}, // 25
			{Kind: "combined", Ages: []int{0, 1, 2, 3, 4, 5, 6, 7}, Size: []int{10, 17}},
			{Kind: "heterogeneous", Ages: []int{3, 4, 5, 6, 7}, Size: []int{14, 19}, Exception: true},
			{Kind: "combined", Ages: []int{0, 1, 2, 3, 4, 5, 6, 7}, Size: []int{10, 17}, Exception: true},
		},
		Combinations: []RawCombination{
			{Name: "homogeneous by year", Candidates: []int{2, 3, 4, 9, 10, 11, 12, 13}},
			{Name: "homogeneous pairs", Candidates: []int{0, 4, 5, 7, 13}},
			{Name: "nursery and kindergarten", Candidates: []int{14, 19}},
			{Name: "heterogeneous", Candidates: []int{24, 25}},
			{Name: "heterogeneous nursery, kindergarten by year", Candidates: []int{24, 9, 10, 11, 12, 13}},
			{Name: "combined", Candidates: []int{26}},
		},
	}
}
