package dataprep

import "github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/data"

// Imputer is the pipeline stage wrapping Impute.
type Imputer struct{}

func (Imputer) Name() string              { return stageImpute }
func (Imputer) After() []string           { return nil }
func (Imputer) Apply(t *data.Table) error { return Impute(t) }

// Encoder is the pipeline stage wrapping Encode.
type Encoder struct{}

func (Encoder) Name() string              { return stageEncode }
func (Encoder) After() []string           { return []string{stageImpute} }
func (Encoder) Apply(t *data.Table) error { return Encode(t) }

// Deriver is the pipeline stage wrapping DeriveFeatures.
type Deriver struct {
	Age Buckets
}

func (Deriver) Name() string                { return stageDerive }
func (Deriver) After() []string             { return []string{stageImpute} }
func (d Deriver) Apply(t *data.Table) error { return DeriveFeatures(t, d.Age) }

// Scaler is the pipeline stage wrapping Standardize. It runs after Deriver so
// derived features see unscaled inputs.
type Scaler struct {
	Columns []string
}

func (Scaler) Name() string    { return stageScale }
func (Scaler) After() []string { return []string{stageDerive} }
func (s Scaler) Apply(t *data.Table) error {
	_, err := Standardize(t, s.Columns)
	return err
}
