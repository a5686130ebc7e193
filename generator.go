package bls

// Generator is a deployment-wide public parameter on G2: a random nonzero
// multiple of the curve's canonical G2 base point. All VerKeys and PoPs in
// a given deployment must be created against the same Generator; mixing
// generators silently breaks verification.
type Generator struct {
	p     *PointG2
	bytes []byte
}

func newGenerator(p *PointG2) *Generator {
	return &Generator{p: p, bytes: p.ToBytes()}
}

// NewGenerator samples a fresh random Generator.
func NewGenerator() (*Generator, error) {
	for {
		p, err := RandomG2()
		if err != nil {
			return nil, err
		}
		if !p.IsInfinity() {
			return newGenerator(p), nil
		}
	}
}

// GeneratorFromBytes decodes a Generator from its canonical G2 encoding.
func GeneratorFromBytes(b []byte) (*Generator, error) {
	p, err := G2FromBytes(b)
	if err != nil {
		return nil, err
	}
	return newGenerator(p), nil
}

// AsBytes returns the Generator's canonical encoding, computed once at
// construction time and cached.
func (g *Generator) AsBytes() []byte {
	return g.bytes
}

// Point exposes the underlying G2 point for use by VerKey and the
// verification equations in bls.go.
func (g *Generator) Point() *PointG2 {
	return g.p
}
