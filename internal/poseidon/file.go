package poseidon

import (
	"math/big"

	"github.com/pkg/errors"

	"tokamakauth/internal/field"
	"tokamakauth/internal/store"
)

// File is the on-disk form of a parameter set.
type File struct {
	Field          string     `json:"field"`
	T              int        `json:"t"`
	RoundsFull     int        `json:"roundsFull"`
	RoundsPartial  int        `json:"roundsPartial"`
	SboxPower      int        `json:"sboxPower"`
	MDS            [][]string `json:"mds"`
	RoundConstants [][]string `json:"roundConstants"`
}

// ToFile renders validated parameters in the file schema.
func ToFile(p *Params) (*File, error) {
	v, err := Validate(p)
	if err != nil {
		return nil, err
	}
	return &File{
		Field:          v.Field.Name(),
		T:              v.Width,
		RoundsFull:     v.FullRounds,
		RoundsPartial:  v.PartialRounds,
		SboxPower:      v.SboxPower,
		MDS:            encodeMatrix(v.Field, v.MDS),
		RoundConstants: encodeMatrix(v.Field, v.RoundConstants),
	}, nil
}

// Params decodes and validates the file contents.
func (pf *File) Params() (*Params, error) {
	f, err := field.ByName(pf.Field)
	if err != nil {
		return nil, errors.Wrap(ErrConfiguration, err.Error())
	}
	mds, err := decodeMatrix(f, pf.MDS, "mds")
	if err != nil {
		return nil, err
	}
	rc, err := decodeMatrix(f, pf.RoundConstants, "roundConstants")
	if err != nil {
		return nil, err
	}
	return Validate(&Params{
		Field:          f,
		Width:          pf.T,
		FullRounds:     pf.RoundsFull,
		PartialRounds:  pf.RoundsPartial,
		SboxPower:      pf.SboxPower,
		MDS:            mds,
		RoundConstants: rc,
	})
}

// LoadFile reads and validates a parameter file. Any schema, encoding or
// dimension problem is reported as ErrConfiguration.
func LoadFile(path string) (*Params, error) {
	var pf File
	if err := store.ReadJSON(path, &pf); err != nil {
		return nil, errors.Wrap(ErrConfiguration, err.Error())
	}
	p, err := pf.Params()
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	log.Info("loaded permutation parameters", "file", path, "field", p.Field.Name(),
		"t", p.Width, "roundsFull", p.FullRounds, "roundsPartial", p.PartialRounds,
		"rcRows", len(p.RoundConstants), "fingerprint", p.Fingerprint())
	return p, nil
}

// SaveFile validates p and writes it to path.
func SaveFile(path string, p *Params) error {
	pf, err := ToFile(p)
	if err != nil {
		return err
	}
	return store.WriteJSON(path, pf, 0o644)
}

func encodeMatrix(f *field.Field, m [][]*big.Int) [][]string {
	out := make([][]string, len(m))
	for i, row := range m {
		out[i] = make([]string, len(row))
		for j, x := range row {
			out[i][j] = f.Encode(x)
		}
	}
	return out
}

func decodeMatrix(f *field.Field, m [][]string, name string) ([][]*big.Int, error) {
	out := make([][]*big.Int, len(m))
	for i, row := range m {
		out[i] = make([]*big.Int, len(row))
		for j, s := range row {
			x, err := f.Decode(s)
			if err != nil {
				return nil, configError("%s[%d][%d]: %v", name, i, j, err)
			}
			out[i][j] = x
		}
	}
	return out, nil
}
