package generator

import "strings"

// ErrorClass is the closed set of provider-error categories the fallback
// ladder reacts to. Anything not matched is ClassOther and is never retried.
type ErrorClass int

const (
	ClassOther ErrorClass = iota
	// ClassTemperatureUnsupported: the model only accepts its implicit
	// default temperature and rejected the explicit value.
	ClassTemperatureUnsupported
	// ClassJSONModeUnsupported: response_format={"type":"json_object"} is not
	// available on this model/endpoint.
	ClassJSONModeUnsupported
	// ClassNewLengthParamUnsupported: the endpoint rejected
	// max_completion_tokens and wants the legacy max_tokens.
	ClassNewLengthParamUnsupported
	// ClassLegacyLengthParamUnsupported: the endpoint rejected max_tokens and
	// wants max_completion_tokens.
	ClassLegacyLengthParamUnsupported
)

// Classifier maps a provider error onto an ErrorClass. It is pluggable so
// the matching strings can be swapped per provider without touching the
// retry logic.
type Classifier func(err error) ErrorClass

// ClassifyOpenAIError is the default classifier. There is no capability
// discovery call and no stable error codes for these rejections, so it
// matches substrings of the provider's error text. This is heuristic and
// brittle by nature: a provider rewording its messages silently turns a
// recoverable rejection into ClassOther.
func ClassifyOpenAIError(err error) ErrorClass {
	if err == nil {
		return ClassOther
	}
	msg := err.Error()
	unsupportedParam := strings.Contains(msg, "Unsupported parameter")
	switch {
	case strings.Contains(msg, "Unsupported value") && strings.Contains(msg, "temperature"):
		return ClassTemperatureUnsupported
	case (unsupportedParam || strings.Contains(msg, "Unrecognized request argument")) &&
		strings.Contains(msg, "response_format"):
		return ClassJSONModeUnsupported
	}
	if unsupportedParam {
		// Length-parameter rejections usually name both parameters ("Use
		// 'max_tokens' instead"), so key on the one quoted right after
		// "Unsupported parameter:" before falling back to a loose match.
		switch {
		case strings.Contains(msg, "Unsupported parameter: 'max_completion_tokens'"):
			return ClassNewLengthParamUnsupported
		case strings.Contains(msg, "Unsupported parameter: 'max_tokens'"):
			return ClassLegacyLengthParamUnsupported
		case strings.Contains(msg, "max_completion_tokens"):
			return ClassNewLengthParamUnsupported
		case strings.Contains(msg, "max_tokens"):
			return ClassLegacyLengthParamUnsupported
		}
	}
	return ClassOther
}
