package fisapi

import (
	"go.uber.org/zap/zapcore"
)

type PredictRequestMarshaler struct {
	Req *PredictRequest
}

func (m PredictRequestMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for name, v := range m.Req.Inputs {
		enc.AddFloat64(name, v)
	}
	return nil
}

type ModelInfoMarshaler struct {
	Info *ModelInfo
}

func (m ModelInfoMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", m.Info.Name)
	enc.AddInt("inputs", len(m.Info.Inputs))
	enc.AddFloat64("domain_min", m.Info.DomainMin)
	enc.AddFloat64("domain_max", m.Info.DomainMax)
	enc.AddInt("steps", m.Info.Steps)
	return nil
}
