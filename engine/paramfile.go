package engine

import (
	"fmt"

	"github.com/spf13/viper"
)

// ParamFile is the on-disk record of a Params' two triples. Field names
// are snake_case in the YAML it binds to; the struct itself is otherwise a
// plain mirror of
// Triple, duplicated under Start/End so a file is self-contained.
type ParamFile struct {
	Start TripleRecord `mapstructure:"start"`
	End   TripleRecord `mapstructure:"end"`
}

// TripleRecord is Triple's on-disk shape.
type TripleRecord struct {
	SelfWeight     int       `mapstructure:"self_weight" yaml:"self_weight"`
	TypeValues     []float64 `mapstructure:"type_values" yaml:"type_values"`
	PawnRowValue   float64   `mapstructure:"pawn_row_value" yaml:"pawn_row_value"`
	MoveCountValue float64   `mapstructure:"move_count_value" yaml:"move_count_value"`
}

func tripleToRecord(t Triple) TripleRecord {
	return TripleRecord{
		SelfWeight:     t.SelfWeight,
		TypeValues:     append([]float64(nil), t.TypeValues[:]...),
		PawnRowValue:   t.PawnRowValue,
		MoveCountValue: t.MoveCountValue,
	}
}

func recordToTriple(r TripleRecord) (Triple, error) {
	var t Triple
	if len(r.TypeValues) != len(t.TypeValues) {
		return Triple{}, fmt.Errorf("engine: param file has %d type values, want %d", len(r.TypeValues), len(t.TypeValues))
	}
	t.SelfWeight = r.SelfWeight
	copy(t.TypeValues[:], r.TypeValues)
	t.PawnRowValue = r.PawnRowValue
	t.MoveCountValue = r.MoveCountValue
	return t, nil
}

// LoadParamFile reads a start/end parameter pair from path (any format
// viper supports by extension — YAML is the convention used here) and
// returns a Params built from it.
func LoadParamFile(path string) (*Params, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("engine: reading param file %s: %w", path, err)
	}

	var pf ParamFile
	if err := v.Unmarshal(&pf); err != nil {
		return nil, fmt.Errorf("engine: decoding param file %s: %w", path, err)
	}

	start, err := recordToTriple(pf.Start)
	if err != nil {
		return nil, fmt.Errorf("engine: param file %s start triple: %w", path, err)
	}
	end, err := recordToTriple(pf.End)
	if err != nil {
		return nil, fmt.Errorf("engine: param file %s end triple: %w", path, err)
	}
	return NewParams(start, end), nil
}

// SaveParamFile writes p's Start/End triples to path as YAML, overwriting
// any existing file.
func SaveParamFile(path string, p *Params) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.Set("start", tripleToRecord(p.Start))
	v.Set("end", tripleToRecord(p.End))
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("engine: writing param file %s: %w", path, err)
	}
	return nil
}
