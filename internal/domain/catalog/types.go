package catalog

import (
	"errors"

	"party-rental/internal/pkg/errs"
)

var (
	ErrInvalidMachineType = errs.Invalid(errors.New("machine type must be one of single, double, triple"))
	ErrInvalidCapacity    = errs.Invalid(errors.New("capacity must be one of 15, 30, 45"))
	ErrInvalidMixerType   = errs.Invalid(errors.New("unknown mixer type"))
)

type MachineType string

const (
	MachineSingle MachineType = "single"
	MachineDouble MachineType = "double"
	MachineTriple MachineType = "triple"
)

func (m MachineType) String() string {
	return string(m)
}

func (m MachineType) IsValid() bool {
	switch m {
	case MachineSingle, MachineDouble, MachineTriple:
		return true
	default:
		return false
	}
}

// Tanks is the number of tanks, which is also the number of mixers the tier can run.
func (m MachineType) Tanks() int {
	switch m {
	case MachineSingle:
		return 1
	case MachineDouble:
		return 2
	case MachineTriple:
		return 3
	default:
		return 0
	}
}

func ParseMachineType(s string) (MachineType, error) {
	m := MachineType(s)
	if !m.IsValid() {
		return "", ErrInvalidMachineType
	}
	return m, nil
}

// Capacity is the total tank volume in liters.
type Capacity int

const (
	Capacity15 Capacity = 15
	Capacity30 Capacity = 30
	Capacity45 Capacity = 45
)

func (c Capacity) Int() int {
	return int(c)
}

func (c Capacity) IsValid() bool {
	switch c {
	case Capacity15, Capacity30, Capacity45:
		return true
	default:
		return false
	}
}

func ParseCapacity(v int) (Capacity, error) {
	c := Capacity(v)
	if !c.IsValid() {
		return 0, ErrInvalidCapacity
	}
	return c, nil
}

// CapacityFor maps a tier to its tank capacity.
func CapacityFor(m MachineType) Capacity {
	switch m {
	case MachineSingle:
		return Capacity15
	case MachineDouble:
		return Capacity30
	case MachineTriple:
		return Capacity45
	default:
		return 0
	}
}

type MixerType string

const (
	MixerNonAlcoholic       MixerType = "non-alcoholic"
	MixerMargarita          MixerType = "margarita"
	MixerPinaColada         MixerType = "pina-colada"
	MixerStrawberryDaiquiri MixerType = "strawberry-daiquiri"
)

func (m MixerType) String() string {
	return string(m)
}

func (m MixerType) IsValid() bool {
	switch m {
	case MixerNonAlcoholic, MixerMargarita, MixerPinaColada, MixerStrawberryDaiquiri:
		return true
	default:
		return false
	}
}

func ParseMixerType(s string) (MixerType, error) {
	m := MixerType(s)
	if !m.IsValid() {
		return "", ErrInvalidMixerType
	}
	return m, nil
}
