package generator

import (
	"errors"
	"testing"
)

// TestClassifyOpenAIError verifies the substring table against realistic
// provider error texts. The table is deliberately narrow: anything not
// matched must land in ClassOther so it is never retried.
func TestClassifyOpenAIError(t *testing.T) {
	cases := []struct {
		name string
		msg  string
		want ErrorClass
	}{
		{
			"temperature",
			"400: Unsupported value: 'temperature' does not support 0.7 with this model. Only the default (1) value is supported.",
			ClassTemperatureUnsupported,
		},
		{
			"json mode unsupported parameter",
			"400: Unsupported parameter: 'response_format' is not supported with this model.",
			ClassJSONModeUnsupported,
		},
		{
			"json mode unrecognized argument",
			"400: Unrecognized request argument supplied: response_format",
			ClassJSONModeUnsupported,
		},
		{
			"new length param",
			"400: Unsupported parameter: 'max_completion_tokens' is not supported with this model. Use 'max_tokens' instead.",
			ClassNewLengthParamUnsupported,
		},
		{
			"legacy length param",
			"400: Unsupported parameter: 'max_tokens' is not supported with this model. Use 'max_completion_tokens' instead.",
			ClassLegacyLengthParamUnsupported,
		},
		{
			"rate limit is not a compatibility error",
			"429: Rate limit reached, please retry after 20 seconds.",
			ClassOther,
		},
		{
			"auth failure is not a compatibility error",
			"401: Access denied due to invalid subscription key.",
			ClassOther,
		},
	}
	for _, tc := range cases {
		if got := ClassifyOpenAIError(errors.New(tc.msg)); got != tc.want {
			t.Errorf("%s: ClassifyOpenAIError = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// TestClassifyOpenAIError_Nil verifies nil maps to ClassOther.
func TestClassifyOpenAIError_Nil(t *testing.T) {
	if got := ClassifyOpenAIError(nil); got != ClassOther {
		t.Errorf("ClassifyOpenAIError(nil) = %v, want ClassOther", got)
	}
}
