package montecarlo

import (
	"math/rand/v2"

	"github.com/oliverbestmann/montecarlo/gm"
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

//go:generate mockgen -source=source.go -destination=source_mock.go -package=montecarlo

// Source draws values uniformly from [0, bound). The Sampler uses two
// independent draws per sample.
type Source interface {
	Uniform(bound float64) float64
}

var _ gm.UniformSource = Source(nil)

type uniformSource struct {
	src xrand.Source
}

// NewSource returns the default Source, a seeded PCG generator. A seed of zero
// is replaced by a random seed.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &uniformSource{src: xrand.NewSource(seed)}
}

func (u *uniformSource) Uniform(bound float64) float64 {
	dist := distuv.Uniform{Min: 0, Max: bound, Src: u.src}
	return dist.Rand()
}
