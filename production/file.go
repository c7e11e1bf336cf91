package production

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a problem:
//
//	objective: [-3, -5]
//	constraints:
//	  - [1, 0]
//	  - [0, 2]
//	  - [3, 2]
//	rhs: [4, 12, 18]
type Document struct {
	Objective   []float64   `yaml:"objective" json:"objective"`
	Constraints [][]float64 `yaml:"constraints" json:"constraints"`
	RHS         []float64   `yaml:"rhs" json:"rhs"`
}

// Decode reads one YAML problem from r. Malformed YAML and non-numeric values
// fail with ErrParse; dimension mismatches fail with ErrShape.
func Decode(r io.Reader) (*LinearProgram, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, parseError(FieldFile, 0, "document is empty")
		}
		return nil, parseError(FieldFile, 0, "%v", err)
	}
	return New(doc.Objective, doc.Constraints, doc.RHS)
}

// LoadFile reads a YAML problem from path.
func LoadFile(path string) (*LinearProgram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("production: open problem file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes p to w in the form Decode reads.
func Encode(w io.Writer, p *LinearProgram) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p.Document()); err != nil {
		return fmt.Errorf("production: encode problem: %w", err)
	}
	return enc.Close()
}

// Document returns a copy of p in its serializable form.
func (p *LinearProgram) Document() Document {
	return Document{
		Objective:   p.Objective(),
		Constraints: p.Matrix(),
		RHS:         p.RHS(),
	}
}
