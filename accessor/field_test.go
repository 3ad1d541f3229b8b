package accessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForField(t *testing.T) {
	type Channel struct {
		Gain float64
	}
	type Readout struct {
		Label    string
		Channels []Channel
		Active   *Channel
	}
	type Instrument struct {
		Power   float64
		Count   int
		Enabled bool
		Display interface{}
		Readout Readout
	}

	var testCases = []struct {
		description string
		new         func() interface{}
		path        string
		prev        interface{}
		value       interface{}
		expect      interface{}
	}{
		{
			description: "top level field",
			new: func() interface{} {
				return &Instrument{Power: 1.5}
			},
			path:   "Power",
			prev:   1.5,
			value:  2.5,
			expect: 2.5,
		},
		{
			description: "snake_case field name",
			new: func() interface{} {
				return &Instrument{Count: 3}
			},
			path:   "count",
			prev:   3,
			value:  7,
			expect: 7,
		},
		{
			description: "nested field",
			new: func() interface{} {
				return &Instrument{Readout: Readout{Label: "ch0"}}
			},
			path:   "Readout.Label",
			prev:   "ch0",
			value:  "ch1",
			expect: "ch1",
		},
		{
			description: "slice item field",
			new: func() interface{} {
				return &Instrument{Readout: Readout{Channels: []Channel{{Gain: 1}, {Gain: 2}}}}
			},
			path:   "Readout.Channels[1].Gain",
			prev:   2.0,
			value:  4.0,
			expect: 4.0,
		},
		{
			description: "pointer traversal",
			new: func() interface{} {
				return &Instrument{Readout: Readout{Active: &Channel{Gain: 9}}}
			},
			path:   "Readout.Active.Gain",
			prev:   9.0,
			value:  3.0,
			expect: 3.0,
		},
		{
			description: "int coerced to float64 field",
			new: func() interface{} {
				return &Instrument{}
			},
			path:   "Power",
			prev:   0.0,
			value:  2,
			expect: 2.0,
		},
		{
			description: "float64 coerced to int field",
			new: func() interface{} {
				return &Instrument{}
			},
			path:   "Count",
			prev:   0,
			value:  5.0,
			expect: 5,
		},
		{
			description: "interface field",
			new: func() interface{} {
				return &Instrument{}
			},
			path:   "Display",
			prev:   nil,
			value:  "ready",
			expect: "ready",
		},
	}

	for _, testCase := range testCases {
		anAccessor, err := ForField(testCase.new(), testCase.path)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.prev, anAccessor.Value(), testCase.description)
		err = anAccessor.SetValue(testCase.value)
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, anAccessor.Value(), testCase.description)
	}
}

func TestForField_errors(t *testing.T) {
	type Holder struct {
		Id    int
		Items []int
	}

	var testCases = []struct {
		description string
		owner       interface{}
		path        string
	}{
		{
			description: "nil owner",
			path:        "Id",
		},
		{
			description: "non struct owner",
			owner:       "abc",
			path:        "Id",
		},
		{
			description: "struct value owner",
			owner:       Holder{},
			path:        "Id",
		},
		{
			description: "unknown field",
			owner:       &Holder{},
			path:        "Name",
		},
		{
			description: "index on non slice",
			owner:       &Holder{},
			path:        "Id[0]",
		},
		{
			description: "empty path",
			owner:       &Holder{},
			path:        "",
		},
		{
			description: "leaf on non struct",
			owner:       &Holder{},
			path:        "Id.Value",
		},
	}

	for _, testCase := range testCases {
		_, err := ForField(testCase.owner, testCase.path)
		assert.NotNil(t, err, testCase.description)
	}
}

func TestForField_indexOutOfRange(t *testing.T) {
	type Holder struct {
		Items []int
	}
	holder := &Holder{Items: []int{1, 2}}
	anAccessor, err := ForField(holder, "Items[5]")
	require.NoError(t, err)
	assert.Nil(t, anAccessor.Value())
	assert.Error(t, anAccessor.SetValue(3))
}

func TestForField_incompatibleValue(t *testing.T) {
	type Holder struct {
		Name string
	}
	anAccessor, err := ForField(&Holder{}, "Name")
	require.NoError(t, err)
	assert.Error(t, anAccessor.SetValue([]int{1, 2}))
}
