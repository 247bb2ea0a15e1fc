package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

func sodiumInflux(t *testing.T) TransportEnergyRecord {
	t.Helper()
	r, err := NewTransportEnergyRecord(Conditions{
		Name:                     "Na influx",
		Ion:                      "Na+",
		OriginConcentration:      0.145,
		DestinationConcentration: 0.015,
		Valence:                  1,
		MembranePotential:        -0.07,
		Temperature:              310,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func calciumInflux(t *testing.T) TransportEnergyRecord {
	t.Helper()
	temp, err := ParseTemperature("37C")
	if err != nil {
		t.Fatalf("unexpected error parsing temperature: %v", err)
	}
	r, err := NewTransportEnergyRecordFromLab(LabConditions{
		Name:                               "Ca influx",
		Ion:                                "Ca2+",
		OriginConcentrationMillimolar:      1.8,
		DestinationConcentrationMillimolar: 0.0001,
		Valence:                            2,
		MembranePotentialMillivolts:        -70,
		Temperature:                        temp,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func TestNewTransportEnergyRecord_SodiumInflux(t *testing.T) {
	r := sodiumInflux(t)

	if got := r.GibbsEnergyKJ(); math.Abs(got-(-12.60)) > 0.05 {
		t.Errorf("expected ΔG ≈ -12.60 kJ/mol, got %v", got)
	}
	if !r.Favorable() {
		t.Error("expected sodium influx to be favorable")
	}
	if got := r.ConcentrationTerm() + r.ElectricalTerm(); got != r.GibbsEnergy() {
		t.Errorf("terms sum to %v, want %v", got, r.GibbsEnergy())
	}
}

func TestNewTransportEnergyRecordFromLab_CalciumInflux(t *testing.T) {
	r := calciumInflux(t)

	if got := r.GibbsEnergyKJ(); math.Abs(got-(-38.76)) > 0.05 {
		t.Errorf("expected ΔG ≈ -38.76 kJ/mol, got %v", got)
	}
	if got := r.Temperature(); math.Abs(got-310.15) > 1e-9 {
		t.Errorf("expected 310.15 K, got %v", got)
	}
	if got := r.DestinationConcentration(); math.Abs(got-1e-7) > 1e-15 {
		t.Errorf("expected 1e-7 M, got %v", got)
	}
}

func TestLabAndSIConstructorsAgree(t *testing.T) {
	tests := []struct {
		name string
		si   Conditions
		lab  LabConditions
	}{
		{
			name: "sodium",
			si:   Conditions{OriginConcentration: 0.145, DestinationConcentration: 0.015, Valence: 1, MembranePotential: -0.07, Temperature: 310},
			lab:  LabConditions{OriginConcentrationMillimolar: 145, DestinationConcentrationMillimolar: 15, Valence: 1, MembranePotentialMillivolts: -70, Temperature: KelvinTemperature(310)},
		},
		{
			name: "potassium efflux in celsius",
			si:   Conditions{OriginConcentration: 0.140, DestinationConcentration: 0.005, Valence: 1, MembranePotential: 0.07, Temperature: 310.15},
			lab:  LabConditions{OriginConcentrationMillimolar: 140, DestinationConcentrationMillimolar: 5, Valence: 1, MembranePotentialMillivolts: 70, Temperature: CelsiusTemperature(37)},
		},
		{
			name: "chloride",
			si:   Conditions{OriginConcentration: 0.110, DestinationConcentration: 0.010, Valence: -1, MembranePotential: -0.06, Temperature: 298.15},
			lab:  LabConditions{OriginConcentrationMillimolar: 110, DestinationConcentrationMillimolar: 10, Valence: -1, MembranePotentialMillivolts: -60, Temperature: CelsiusTemperature(25)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			si, err := NewTransportEnergyRecord(tt.si)
			if err != nil {
				t.Fatalf("SI constructor failed: %v", err)
			}
			lab, err := NewTransportEnergyRecordFromLab(tt.lab)
			if err != nil {
				t.Fatalf("lab constructor failed: %v", err)
			}
			if !si.Equivalent(lab) {
				t.Errorf("SI ΔG %v != lab ΔG %v", si.GibbsEnergy(), lab.GibbsEnergy())
			}
		})
	}
}

func TestNewTransportEnergyRecord_Validation(t *testing.T) {
	valid := Conditions{
		OriginConcentration:      0.145,
		DestinationConcentration: 0.015,
		Valence:                  1,
		MembranePotential:        -0.07,
		Temperature:              310,
	}

	tests := []struct {
		name   string
		modify func(c *Conditions)
		field  string
	}{
		{"zero origin", func(c *Conditions) { c.OriginConcentration = 0 }, "origin_concentration"},
		{"negative origin", func(c *Conditions) { c.OriginConcentration = -1 }, "origin_concentration"},
		{"zero destination", func(c *Conditions) { c.DestinationConcentration = 0 }, "destination_concentration"},
		{"negative destination", func(c *Conditions) { c.DestinationConcentration = -0.01 }, "destination_concentration"},
		{"NaN destination", func(c *Conditions) { c.DestinationConcentration = math.NaN() }, "destination_concentration"},
		{"sub-picomolar", func(c *Conditions) { c.OriginConcentration = 1e-15 }, "origin_concentration"},
		{"above 10 M", func(c *Conditions) { c.DestinationConcentration = 12 }, "destination_concentration"},
		{"zero temperature", func(c *Conditions) { c.Temperature = 0 }, "temperature"},
		{"negative temperature", func(c *Conditions) { c.Temperature = -5 }, "temperature"},
		{"celsius passed as kelvin", func(c *Conditions) { c.Temperature = 37 }, "temperature"},
		{"boiling", func(c *Conditions) { c.Temperature = 400 }, "temperature"},
		{"infinite temperature", func(c *Conditions) { c.Temperature = math.Inf(1) }, "temperature"},
		{"zero valence", func(c *Conditions) { c.Valence = 0 }, "valence"},
		{"millivolts passed as volts", func(c *Conditions) { c.MembranePotential = -70 }, "membrane_potential"},
		{"NaN potential", func(c *Conditions) { c.MembranePotential = math.NaN() }, "membrane_potential"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.modify(&c)

			_, err := NewTransportEnergyRecord(c)
			if err == nil {
				t.Fatal("expected error but got nil")
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, verr.Field)
			}
		})
	}
}

func TestNewTransportEnergyRecord_BoundariesAccepted(t *testing.T) {
	tests := []Conditions{
		{OriginConcentration: MinConcentration, DestinationConcentration: MaxConcentration, Valence: 1, Temperature: MinTemperature},
		{OriginConcentration: 1, DestinationConcentration: 1, Valence: -2, MembranePotential: MaxMembranePotential, Temperature: MaxTemperature},
		{OriginConcentration: 1, DestinationConcentration: 1, Valence: 3, MembranePotential: -MaxMembranePotential, Temperature: DefaultTemperature},
	}

	for i, c := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if _, err := NewTransportEnergyRecord(c); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewTransportEnergyRecordFromLab_Validation(t *testing.T) {
	_, err := NewTransportEnergyRecordFromLab(LabConditions{
		OriginConcentrationMillimolar:      145,
		DestinationConcentrationMillimolar: 15,
		Valence:                            0,
		MembranePotentialMillivolts:        -70,
		Temperature:                        CelsiusTemperature(37),
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for zero valence, got %v", err)
	}

	_, err = NewTransportEnergyRecordFromLab(LabConditions{
		OriginConcentrationMillimolar:      145,
		DestinationConcentrationMillimolar: 15,
		Valence:                            1,
		MembranePotentialMillivolts:        -70,
		Temperature:                        CelsiusTemperature(-300),
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation below absolute zero, got %v", err)
	}
}

func TestTransportEnergyRecord_String(t *testing.T) {
	tests := []struct {
		record func(t *testing.T) TransportEnergyRecord
		want   string
	}{
		{sodiumInflux, "Gibbs Ion Transport (Na influx: Na+, ∆G = -12.60 kJ/mol)"},
		{calciumInflux, "Gibbs Ion Transport (Ca influx: Ca2+, ∆G = -38.77 kJ/mol)"},
	}

	for _, tt := range tests {
		r := tt.record(t)
		if got := r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}

		// numeric portion matches ΔG/1000 rounded to two decimals
		s := r.String()
		start := strings.Index(s, "= ") + 2
		end := strings.Index(s, " kJ/mol")
		v, err := strconv.ParseFloat(s[start:end], 64)
		if err != nil {
			t.Fatalf("failed to parse value from %q: %v", s, err)
		}
		if math.Abs(v-r.GibbsEnergyKJ()) > 0.005 {
			t.Errorf("displayed %v, ΔG is %v kJ/mol", v, r.GibbsEnergyKJ())
		}
	}
}

func TestTransportEnergyRecord_Ordering(t *testing.T) {
	na := sodiumInflux(t)
	ca := calciumInflux(t)

	if !ca.Less(na) {
		t.Error("expected Ca influx to be more favorable than Na influx")
	}
	if !na.Greater(ca) {
		t.Error("expected Na influx to be greater than Ca influx")
	}
	if na.Less(ca) || ca.Greater(na) {
		t.Error("ordering is not antisymmetric")
	}
	if na.Equivalent(ca) {
		t.Error("distinct energies reported as equivalent")
	}
	if na.Compare(na) != 0 || na.Less(na) {
		t.Error("a record must be equivalent to itself and not less than itself")
	}
}

func TestTransportEnergyRecord_OrderingTrichotomy(t *testing.T) {
	potentials := []float64{-0.09, -0.07, -0.07, 0, 0.03}
	records := make([]TransportEnergyRecord, len(potentials))
	for i, vm := range potentials {
		r, err := NewTransportEnergyRecord(Conditions{
			OriginConcentration:      0.01,
			DestinationConcentration: 0.02,
			Valence:                  1,
			MembranePotential:        vm,
			Temperature:              DefaultTemperature,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		records[i] = r
	}

	for _, a := range records {
		for _, b := range records {
			n := 0
			if a.Less(b) {
				n++
			}
			if a.Equivalent(b) {
				n++
			}
			if b.Less(a) {
				n++
			}
			if n != 1 {
				t.Errorf("expected exactly one of <, ==, > for %v and %v, got %d", a.GibbsEnergy(), b.GibbsEnergy(), n)
			}
			for _, c := range records {
				if a.Less(b) && b.Less(c) && !a.Less(c) {
					t.Errorf("ordering not transitive for %v < %v < %v", a.GibbsEnergy(), b.GibbsEnergy(), c.GibbsEnergy())
				}
			}
		}
	}
}

func TestTransportEnergyRecord_EquivalentWithinTolerance(t *testing.T) {
	base := Conditions{OriginConcentration: 0.1, DestinationConcentration: 0.1, Valence: 1, MembranePotential: 0.01, Temperature: 310}
	a, err := NewTransportEnergyRecord(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 1e-12 V shifts ΔG by ~1e-7 J/mol
	base.MembranePotential += 1e-12
	b, err := NewTransportEnergyRecord(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.Equivalent(b) {
		t.Errorf("expected %v and %v to be equivalent", a.GibbsEnergy(), b.GibbsEnergy())
	}

	// 1e-9 V shifts ΔG by ~1e-4 J/mol
	base.MembranePotential += 1e-9
	c, err := NewTransportEnergyRecord(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Equivalent(c) {
		t.Errorf("expected %v and %v to differ", a.GibbsEnergy(), c.GibbsEnergy())
	}
}

func TestTransportEnergyRecord_Combine(t *testing.T) {
	na := sodiumInflux(t)
	ca := calciumInflux(t)

	sum := na.Combine(ca)
	if got := sum.KilojoulesPerMole(); math.Abs(got-(-51.36)) > 0.1 {
		t.Errorf("expected combined ΔG ≈ -51.36 kJ/mol, got %v", got)
	}
	if sum.Compare(ca.Combine(na)) != 0 {
		t.Errorf("Combine is not commutative: %v vs %v", sum, ca.Combine(na))
	}
	if got := sum.String(); got != "∆G = -51.37 kJ/mol" {
		t.Errorf("String() = %q", got)
	}

	chained := na.Combine(ca).Plus(na)
	regrouped := na.Combine(na).Plus(ca)
	if chained.Compare(regrouped) != 0 {
		t.Errorf("Plus is not associative: %v vs %v", chained.JoulesPerMole(), regrouped.JoulesPerMole())
	}
}

func TestTransportEnergyRecord_OperationsDoNotMutate(t *testing.T) {
	na := sodiumInflux(t)
	ca := calciumInflux(t)
	before := na

	_ = na.Compare(ca)
	_ = na.Combine(ca)
	_ = na.String()
	_ = na.Equivalent(ca)

	if na != before {
		t.Error("record changed after read-only operations")
	}
	if na.Name() != "Na influx" || na.Ion() != "Na+" || na.Valence() != 1 {
		t.Errorf("unexpected fields: %q %q %d", na.Name(), na.Ion(), na.Valence())
	}
	if na.OriginConcentration() != 0.145 || na.MembranePotential() != -0.07 {
		t.Errorf("unexpected inputs: %v M, %v V", na.OriginConcentration(), na.MembranePotential())
	}
}
