package domain

import (
	"fmt"
	"math"
)

const (
	GasConstant     = 8.314  // J/(mol·K)
	FaradayConstant = 96485  // C/mol
	CelsiusOffset   = 273.15 // K at 0 °C

	// DefaultTemperature is body temperature in kelvin
	DefaultTemperature = 310.0

	// EnergyTolerance is the absolute difference in J/mol below which two
	// energies are treated as equal
	EnergyTolerance = 1e-6
)

// Physiological bounds enforced at construction
const (
	MinConcentration     = 1e-12  // M
	MaxConcentration     = 10.0   // M
	MinTemperature       = 273.15 // K (0 °C)
	MaxTemperature       = 373.15 // K (100 °C)
	MaxMembranePotential = 0.3    // V, applied to the absolute value
)

// Conditions describes a transport event in SI units: molar, volts, kelvin
type Conditions struct {
	Name                     string
	Ion                      string
	OriginConcentration      float64
	DestinationConcentration float64
	Valence                  int
	MembranePotential        float64
	Temperature              float64
}

// LabConditions describes a transport event in bench units: millimolar and millivolts
type LabConditions struct {
	Name                               string
	Ion                                string
	OriginConcentrationMillimolar      float64
	DestinationConcentrationMillimolar float64
	Valence                            int
	MembranePotentialMillivolts        float64
	Temperature                        Temperature
}

// TransportEnergyRecord is the free energy change of moving one mole of an ion
// across a membrane. It is immutable: every field is fixed at construction and
// the record may be copied and shared freely.
type TransportEnergyRecord struct {
	name        string
	ion         string
	origin      float64
	destination float64
	valence     int
	potential   float64
	temperature float64

	concentrationTerm float64
	electricalTerm    float64
}

// NewTransportEnergyRecord validates SI-unit conditions and computes ΔG
func NewTransportEnergyRecord(c Conditions) (TransportEnergyRecord, error) {
	if err := validate(c); err != nil {
		return TransportEnergyRecord{}, err
	}

	return TransportEnergyRecord{
		name:              c.Name,
		ion:               c.Ion,
		origin:            c.OriginConcentration,
		destination:       c.DestinationConcentration,
		valence:           c.Valence,
		potential:         c.MembranePotential,
		temperature:       c.Temperature,
		concentrationTerm: GasConstant * c.Temperature * math.Log(c.DestinationConcentration/c.OriginConcentration),
		electricalTerm:    float64(c.Valence) * FaradayConstant * c.MembranePotential,
	}, nil
}

// NewTransportEnergyRecordFromLab converts mM, mV and a tagged temperature to SI
// units and builds the record through NewTransportEnergyRecord
func NewTransportEnergyRecordFromLab(c LabConditions) (TransportEnergyRecord, error) {
	return NewTransportEnergyRecord(Conditions{
		Name:                     c.Name,
		Ion:                      c.Ion,
		OriginConcentration:      c.OriginConcentrationMillimolar / 1000,
		DestinationConcentration: c.DestinationConcentrationMillimolar / 1000,
		Valence:                  c.Valence,
		MembranePotential:        c.MembranePotentialMillivolts / 1000,
		Temperature:              c.Temperature.Kelvin(),
	})
}

func validate(c Conditions) error {
	for _, f := range []struct {
		field    string
		value    float64
		min, max float64
		unit     string
	}{
		{"origin_concentration", c.OriginConcentration, MinConcentration, MaxConcentration, "M"},
		{"destination_concentration", c.DestinationConcentration, MinConcentration, MaxConcentration, "M"},
		{"temperature", c.Temperature, MinTemperature, MaxTemperature, "K"},
	} {
		switch {
		case math.IsNaN(f.value) || math.IsInf(f.value, 0):
			return &ValidationError{Field: f.field, Reason: "must be a finite number"}
		case f.value <= 0:
			return &ValidationError{Field: f.field, Reason: fmt.Sprintf("must be > 0 %s, got %g", f.unit, f.value)}
		case f.value < f.min || f.value > f.max:
			return &ValidationError{Field: f.field, Reason: fmt.Sprintf("%g %s is outside the physiological range [%g, %g]", f.value, f.unit, f.min, f.max)}
		}
	}

	if c.Valence == 0 {
		return &ValidationError{Field: "valence", Reason: "must be non-zero"}
	}

	if math.IsNaN(c.MembranePotential) || math.IsInf(c.MembranePotential, 0) {
		return &ValidationError{Field: "membrane_potential", Reason: "must be a finite number"}
	}
	// ±300 mV; larger magnitudes usually mean millivolts were passed as volts
	if math.Abs(c.MembranePotential) > MaxMembranePotential {
		return &ValidationError{Field: "membrane_potential", Reason: fmt.Sprintf("%g V is outside ±%g V", c.MembranePotential, MaxMembranePotential)}
	}

	return nil
}

func (r TransportEnergyRecord) Name() string { return r.name }
func (r TransportEnergyRecord) Ion() string  { return r.ion }

// OriginConcentration returns the concentration at the origin side in M
func (r TransportEnergyRecord) OriginConcentration() float64 { return r.origin }

// DestinationConcentration returns the concentration at the destination side in M
func (r TransportEnergyRecord) DestinationConcentration() float64 { return r.destination }

func (r TransportEnergyRecord) Valence() int { return r.valence }

// MembranePotential returns Δψ in volts
func (r TransportEnergyRecord) MembranePotential() float64 { return r.potential }

// Temperature returns T in kelvin
func (r TransportEnergyRecord) Temperature() float64 { return r.temperature }

// ConcentrationTerm returns R·T·ln(C_destination/C_origin) in J/mol
func (r TransportEnergyRecord) ConcentrationTerm() float64 { return r.concentrationTerm }

// ElectricalTerm returns z·F·Δψ in J/mol
func (r TransportEnergyRecord) ElectricalTerm() float64 { return r.electricalTerm }

// GibbsEnergy returns ΔG in J/mol
func (r TransportEnergyRecord) GibbsEnergy() float64 {
	return r.concentrationTerm + r.electricalTerm
}

// GibbsEnergyKJ returns ΔG in kJ/mol
func (r TransportEnergyRecord) GibbsEnergyKJ() float64 {
	return r.GibbsEnergy() / 1000
}

// Favorable returns true if transport happens spontaneously (ΔG < 0)
func (r TransportEnergyRecord) Favorable() bool {
	return r.GibbsEnergy() < 0
}

// Compare orders records by ΔG: -1 if r is more favorable than other, +1 if
// less, 0 if the energies are within EnergyTolerance
func (r TransportEnergyRecord) Compare(other TransportEnergyRecord) int {
	return compareEnergy(r.GibbsEnergy(), other.GibbsEnergy())
}

func (r TransportEnergyRecord) Less(other TransportEnergyRecord) bool {
	return r.Compare(other) < 0
}

func (r TransportEnergyRecord) Greater(other TransportEnergyRecord) bool {
	return r.Compare(other) > 0
}

// Equivalent reports whether both records release or require the same energy
func (r TransportEnergyRecord) Equivalent(other TransportEnergyRecord) bool {
	return r.Compare(other) == 0
}

// Combine sums the ΔG of both events. No check is made that the two events
// involve the same ion or membrane.
func (r TransportEnergyRecord) Combine(other TransportEnergyRecord) CombinedEnergy {
	return CombinedEnergy(r.GibbsEnergy() + other.GibbsEnergy())
}

func (r TransportEnergyRecord) String() string {
	return fmt.Sprintf("Gibbs Ion Transport (%s: %s, ∆G = %.2f kJ/mol)", r.name, r.ion, r.GibbsEnergyKJ())
}

// CombinedEnergy is the net ΔG of several transport events in J/mol
type CombinedEnergy float64

// Plus adds one more event to the total
func (e CombinedEnergy) Plus(r TransportEnergyRecord) CombinedEnergy {
	return e + CombinedEnergy(r.GibbsEnergy())
}

// JoulesPerMole returns the total in J/mol
func (e CombinedEnergy) JoulesPerMole() float64 {
	return float64(e)
}

// KilojoulesPerMole returns the total in kJ/mol
func (e CombinedEnergy) KilojoulesPerMole() float64 {
	return float64(e) / 1000
}

// Compare orders totals with the same tolerance as records
func (e CombinedEnergy) Compare(other CombinedEnergy) int {
	return compareEnergy(float64(e), float64(other))
}

func (e CombinedEnergy) String() string {
	return fmt.Sprintf("∆G = %.2f kJ/mol", e.KilojoulesPerMole())
}

func compareEnergy(a, b float64) int {
	switch {
	case math.Abs(a-b) <= EnergyTolerance:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}
