package quality

// Constructor builds a fresh estimator for a bandit with k arms
type Constructor interface {
	NewFunction(k int) (Function, error)
}

// LogPreferencesConstructor builds estimators usable by softmax policies
type LogPreferencesConstructor interface {
	NewLogPreferences(k int) (LogPreferences, error)
}

type SampleMeanConstructor struct {
	Prior []float64
}

var _ Constructor = &SampleMeanConstructor{}

func (s *SampleMeanConstructor) NewFunction(k int) (Function, error) {
	return NewSampleMean(k, s.Prior)
}

type EMAConstConstructor struct {
	Alpha float64
	Prior []float64
}

var _ Constructor = &EMAConstConstructor{}

func (e *EMAConstConstructor) NewFunction(k int) (Function, error) {
	return NewEMAConst(k, e.Alpha, e.Prior)
}

type EMAConstructor struct {
	Alpha float64
	Prior []float64
}

var _ Constructor = &EMAConstructor{}

func (e *EMAConstructor) NewFunction(k int) (Function, error) {
	return NewEMA(k, e.Alpha, e.Prior)
}

type UCBConstructor struct {
	Quality Constructor
	C       float64
}

var _ Constructor = &UCBConstructor{}

func (u *UCBConstructor) NewFunction(k int) (Function, error) {
	inner, err := u.Quality.NewFunction(k)
	if err != nil {
		return nil, err
	}
	return NewUCB(inner, u.C)
}

type GradientPreferenceConstructor struct {
	Alpha float64
	Prior []float64
}

var _ Constructor = &GradientPreferenceConstructor{}
var _ LogPreferencesConstructor = &GradientPreferenceConstructor{}

func (g *GradientPreferenceConstructor) NewFunction(k int) (Function, error) {
	return NewGradientPreference(k, g.Alpha, g.Prior)
}

func (g *GradientPreferenceConstructor) NewLogPreferences(k int) (LogPreferences, error) {
	return NewGradientPreference(k, g.Alpha, g.Prior)
}
