package grpc

import (
	"fmt"
	"math"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/quentinrf/membrane-energy/internal/domain"
)

// requestError is a missing or ill-typed request field
type requestError struct {
	field  string
	reason string
}

func (e *requestError) Error() string {
	return fmt.Sprintf("field %q %s", e.field, e.reason)
}

// recordFromProto builds a record from a transport event. The "units" field
// selects "si" (M, V, K; the default) or "lab" (mM, mV, K or tagged string).
func recordFromProto(s *structpb.Struct) (domain.TransportEnergyRecord, error) {
	fields := s.GetFields()

	valence, err := integerField(fields, "valence")
	if err != nil {
		return domain.TransportEnergyRecord{}, err
	}

	units := strings.ToLower(fields["units"].GetStringValue())
	switch units {
	case "", "si":
		return siRecord(fields, valence)
	case "lab":
		return labRecord(fields, valence)
	default:
		return domain.TransportEnergyRecord{}, &requestError{field: "units", reason: fmt.Sprintf("must be \"si\" or \"lab\", got %q", units)}
	}
}

func siRecord(fields map[string]*structpb.Value, valence int) (domain.TransportEnergyRecord, error) {
	c := domain.Conditions{
		Name:        fields["name"].GetStringValue(),
		Ion:         fields["ion"].GetStringValue(),
		Valence:     valence,
		Temperature: domain.DefaultTemperature,
	}

	var err error
	if c.OriginConcentration, err = numberField(fields, "origin_concentration"); err != nil {
		return domain.TransportEnergyRecord{}, err
	}
	if c.DestinationConcentration, err = numberField(fields, "destination_concentration"); err != nil {
		return domain.TransportEnergyRecord{}, err
	}
	if c.MembranePotential, err = numberField(fields, "membrane_potential"); err != nil {
		return domain.TransportEnergyRecord{}, err
	}
	if _, ok := fields["temperature"]; ok {
		if c.Temperature, err = numberField(fields, "temperature"); err != nil {
			return domain.TransportEnergyRecord{}, err
		}
	}

	return domain.NewTransportEnergyRecord(c)
}

func labRecord(fields map[string]*structpb.Value, valence int) (domain.TransportEnergyRecord, error) {
	c := domain.LabConditions{
		Name:        fields["name"].GetStringValue(),
		Ion:         fields["ion"].GetStringValue(),
		Valence:     valence,
		Temperature: domain.KelvinTemperature(domain.DefaultTemperature),
	}

	var err error
	if c.OriginConcentrationMillimolar, err = numberField(fields, "origin_concentration_mm"); err != nil {
		return domain.TransportEnergyRecord{}, err
	}
	if c.DestinationConcentrationMillimolar, err = numberField(fields, "destination_concentration_mm"); err != nil {
		return domain.TransportEnergyRecord{}, err
	}
	if c.MembranePotentialMillivolts, err = numberField(fields, "membrane_potential_mv"); err != nil {
		return domain.TransportEnergyRecord{}, err
	}

	// temperature is a kelvin number or a tagged string such as "37C"
	if v, ok := fields["temperature"]; ok {
		switch kind := v.GetKind().(type) {
		case *structpb.Value_NumberValue:
			c.Temperature = domain.KelvinTemperature(kind.NumberValue)
		case *structpb.Value_StringValue:
			if c.Temperature, err = domain.ParseTemperature(kind.StringValue); err != nil {
				return domain.TransportEnergyRecord{}, err
			}
		default:
			return domain.TransportEnergyRecord{}, &requestError{field: "temperature", reason: "must be a number or a string"}
		}
	}

	return domain.NewTransportEnergyRecordFromLab(c)
}

func numberField(fields map[string]*structpb.Value, name string) (float64, error) {
	v, ok := fields[name]
	if !ok {
		return 0, &requestError{field: name, reason: "is required"}
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, &requestError{field: name, reason: "must be a number"}
	}
	return n.NumberValue, nil
}

func integerField(fields map[string]*structpb.Value, name string) (int, error) {
	n, err := numberField(fields, name)
	if err != nil {
		return 0, err
	}
	if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
		return 0, &requestError{field: name, reason: "must be an integer"}
	}
	return int(n), nil
}
