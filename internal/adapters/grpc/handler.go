package grpc

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/quentinrf/membrane-energy/internal/domain"
	"github.com/quentinrf/membrane-energy/pkg/pb"
)

// EnergyServiceHandler implements the gRPC EnergyService
type EnergyServiceHandler struct {
	pb.UnimplementedEnergyServiceServer
}

// NewEnergyServiceHandler creates a new gRPC handler
func NewEnergyServiceHandler() *EnergyServiceHandler {
	return &EnergyServiceHandler{}
}

// Calculate evaluates ΔG for a single transport event
func (h *EnergyServiceHandler) Calculate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	log.Info().Msg("Calculate called")

	record, err := recordFromProto(req)
	if err != nil {
		return nil, toStatus(err, "invalid transport event")
	}

	log.Info().
		Str("name", record.Name()).
		Str("ion", record.Ion()).
		Float64("gibbs_energy_kj", record.GibbsEnergyKJ()).
		Msg("calculated transport energy")

	return newResponse(convertRecordToMap(record))
}

// Compare orders two transport events {a, b}; order is -1 when a is more favorable
func (h *EnergyServiceHandler) Compare(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	log.Info().Msg("Compare called")

	a, b, err := recordPairFromProto(req)
	if err != nil {
		return nil, err
	}

	return newResponse(map[string]any{
		"order":      a.Compare(b),
		"equivalent": a.Equivalent(b),
		"a":          convertRecordToMap(a),
		"b":          convertRecordToMap(b),
	})
}

// Combine returns the net ΔG of two transport events {a, b}
func (h *EnergyServiceHandler) Combine(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	log.Info().Msg("Combine called")

	a, b, err := recordPairFromProto(req)
	if err != nil {
		return nil, err
	}

	total := a.Combine(b)
	return newResponse(map[string]any{
		"gibbs_energy":    total.JoulesPerMole(),
		"gibbs_energy_kj": total.KilojoulesPerMole(),
		"favorable":       total < 0,
		"summary":         total.String(),
	})
}

func recordPairFromProto(req *structpb.Struct) (domain.TransportEnergyRecord, domain.TransportEnergyRecord, error) {
	var records [2]domain.TransportEnergyRecord
	for i, key := range []string{"a", "b"} {
		event := req.GetFields()[key].GetStructValue()
		if event == nil {
			log.Error().Str("field", key).Msg("missing transport event")
			return records[0], records[1], status.Errorf(codes.InvalidArgument, "field %q must be a transport event", key)
		}

		r, err := recordFromProto(event)
		if err != nil {
			return records[0], records[1], toStatus(err, "invalid transport event "+key)
		}
		records[i] = r
	}
	return records[0], records[1], nil
}

// convertRecordToMap converts a domain record to response fields
func convertRecordToMap(r domain.TransportEnergyRecord) map[string]any {
	return map[string]any{
		"name":               r.Name(),
		"ion":                r.Ion(),
		"gibbs_energy":       r.GibbsEnergy(),
		"gibbs_energy_kj":    r.GibbsEnergyKJ(),
		"concentration_term": r.ConcentrationTerm(),
		"electrical_term":    r.ElectricalTerm(),
		"favorable":          r.Favorable(),
		"summary":            r.String(),
	}
}

func newResponse(fields map[string]any) (*structpb.Struct, error) {
	resp, err := structpb.NewStruct(fields)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode response")
		return nil, status.Error(codes.Internal, "failed to encode response")
	}
	return resp, nil
}

// toStatus maps domain and request errors to gRPC status codes
func toStatus(err error, msg string) error {
	var reqErr *requestError
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrParse), errors.As(err, &reqErr):
		log.Error().Err(err).Msg(msg)
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		log.Error().Err(err).Msg("unexpected error")
		return status.Error(codes.Internal, msg)
	}
}
