package htmx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_compileDetailsForTriggerHeader(t *testing.T) {
	type Expect struct {
		Result json.RawMessage
		AnErr  bool
	}

	type Test struct {
		Name   string
		Event  Event
		Expect Expect
	}

	tests := []Test{
		{
			Name: "no details results in null",
			Expect: Expect{
				Result: json.RawMessage(`null`),
			},
		},
		{
			Name: "no details with target results in object with target field",
			Event: Event{
				Target: "abc",
			},
			Expect: Expect{
				Result: json.RawMessage(`{"target":"#abc"}`),
			},
		},
		{
			Name: "details object with target prefixed with # results in details object with target field",
			Event: Event{
				Details: map[string]any{
					"key1": "value1",
				},
				Target: "#abc",
			},
			Expect: Expect{
				Result: json.RawMessage(`{"key1":"value1","target":"#abc"}`),
			},
		},
		{
			Name: "raw details are passed through",
			Event: Event{
				Details: json.RawMessage(`{"styles":["a"]}`),
			},
			Expect: Expect{
				Result: json.RawMessage(`{"styles":["a"]}`),
			},
		},
		{
			Name: "details string with target results in error",
			Event: Event{
				Details: "some string",
				Target:  "abc",
			},
			Expect: Expect{
				AnErr: true,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			res, err := test.Event.compileDetailsForTriggerHeader()

			if test.Expect.AnErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, test.Expect.Result, res, "unexpected result")
		})
	}
}

func TestParseTrigger(t *testing.T) {
	type Expect struct {
		Events []Event
		AnErr  bool
	}

	type Test struct {
		Name   string
		Raw    string
		Expect Expect
	}

	tests := []Test{
		{
			Name: "<empty>",
		},
		{
			Name: "single name",
			Raw:  "saved",
			Expect: Expect{
				Events: []Event{{Name: "saved"}},
			},
		},
		{
			Name: "comma separated names",
			Raw:  "saved, closed ,",
			Expect: Expect{
				Events: []Event{{Name: "saved"}, {Name: "closed"}},
			},
		},
		{
			Name: "json object is sorted by name",
			Raw:  `{"b":{"x":1},"a":null}`,
			Expect: Expect{
				Events: []Event{
					{Name: "a"},
					{Name: "b", Details: json.RawMessage(`{"x":1}`)},
				},
			},
		},
		{
			Name: "malformed json",
			Raw:  `{"a":`,
			Expect: Expect{
				AnErr: true,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			es, err := ParseTrigger(test.Raw)
			if test.Expect.AnErr {
				assert.ErrorIs(t, err, ErrMalformedTrigger)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, test.Expect.Events, es)
		})
	}
}

func TestFindEvent(t *testing.T) {
	es := []Event{{Name: "a"}, {Name: "b", Details: 1}}

	e, ok := FindEvent(es, "b")
	assert.True(t, ok)
	assert.Equal(t, 1, e.Details)

	_, ok = FindEvent(es, "c")
	assert.False(t, ok)
}
