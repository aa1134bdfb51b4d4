package cobs_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/dcreager/cobs-go/cobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const string32 = "abcdefghijklmnopqrstuvwxyz012345"
const string64 = string32 + string32
const string128 = string64 + string64
const string256 = string128 + string128

var shortRecords = []string{
	"",
	"abc",
	"\x00",
	"abc\x00",
	"\x00abc",
	"abc\x00abc",
	string128,
	string256,
	string256[:254],
	strings.Repeat("a", 1000),
	strings.Repeat("a", 1000) + "\x00",
}

func ExampleScanner() {
	encoded := []byte("\x04abc\x00\x01\x00\x00\x051234\x00")
	var s cobs.Scanner
	decoded := make([]byte, len(encoded))
	s.Reset(encoded)
	for s.Next() {
		n, err := s.Decode(decoded)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%q\n", decoded[:n])
	}
	// Output:
	// "abc"
	// ""
	// "1234"
}

func parseStrings(t require.TestingT, encoded []byte) []string {
	decodedList := []string{}
	var s cobs.Scanner
	s.Reset(encoded)
	for s.Next() {
		decoded := make([]byte, len(s.Encoded()))
		n, err := s.Decode(decoded)
		require.NoError(t, err)
		decodedList = append(decodedList, string(decoded[:n]))
	}
	return decodedList
}

func encodeList(inputList []string) []byte {
	var buf []byte
	for _, input := range inputList {
		buf = cobs.AppendEncode(buf, []byte(input), true)
	}
	return buf
}

func checkListRoundTrip(t require.TestingT, inputList []string) {
	decodedList := parseStrings(t, encodeList(inputList))
	assert.Equal(t, inputList, decodedList)
}

func TestRoundTripList(t *testing.T) {
	checkListRoundTrip(t, shortRecords)
	checkListRoundTrip(t, []string{})
}

func TestRoundTripRandomLists(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 6).Draw(t, "records").(int)
		inputList := []string{}
		for i := 0; i < n; i++ {
			inputList = append(inputList, string(inputBytes.Draw(t, "input").([]byte)))
		}
		checkListRoundTrip(t, inputList)
	})
}

func TestScannerSkipsEmptyStretches(t *testing.T) {
	encoded := []byte("\x00\x00\x04abc\x00\x00\x00\x03de")
	var s cobs.Scanner
	s.Reset(encoded)

	require.True(t, s.Next())
	assert.Equal(t, []byte("\x04abc\x00"), s.Encoded())
	require.True(t, s.Next())
	// The last record has no trailing delimiter.
	assert.Equal(t, []byte("\x03de"), s.Encoded())
	assert.False(t, s.Next())
	assert.Nil(t, s.Encoded())
	assert.False(t, s.Next())
}

func TestScannerDecodeInPlace(t *testing.T) {
	encoded := encodeList(shortRecords)
	var s cobs.Scanner
	var actual []string
	s.Reset(encoded)
	for s.Next() {
		decoded, err := s.DecodeInPlace()
		require.NoError(t, err)
		actual = append(actual, string(decoded))
	}
	assert.Equal(t, shortRecords, actual)
}

func checkRecordBuilder(t require.TestingT, inputList []string) {
	var builder cobs.RecordBuilder
	var encoded bytes.Buffer
	for _, str := range inputList {
		builder.WriteString(str)
		builder.FinishRecord()
	}
	assert.Equal(t, len(inputList), builder.Records())
	builder.Encode(&encoded)

	actual := parseStrings(t, encoded.Bytes())
	assert.Equal(t, inputList, actual)
}

func TestRecordBuilder(t *testing.T) {
	testCases := [][]string{
		{},
		{"hello", "there"},
		{"what is\x00going on"},
		shortRecords,
	}
	for i := range testCases {
		checkRecordBuilder(t, testCases[i])
	}
}

func TestRecordBuilderReset(t *testing.T) {
	var builder cobs.RecordBuilder
	builder.WriteString("stale")
	builder.FinishRecord()
	builder.WriteString("unfinished")
	builder.Reset()
	assert.Equal(t, 0, builder.Records())

	builder.WriteString("fresh")
	builder.FinishRecord()
	var encoded bytes.Buffer
	builder.Encode(&encoded)
	assert.Equal(t, []string{"fresh"}, parseStrings(t, encoded.Bytes()))
}

type prefixTestCase struct {
	prefix   string
	expected []string
}

var prefixTestCases = []prefixTestCase{
	{"", shortRecords},
	{
		"abc",
		[]string{
			"abc",
			"abc\x00",
			"abc\x00abc",
			string128,
			string256,
			string256[:254],
		},
	},
	{
		"abc\x00",
		[]string{
			"abc\x00",
			"abc\x00abc",
		},
	},
	{
		"\x00",
		[]string{
			"\x00",
			"\x00abc",
		},
	},
	{
		string256[:255],
		[]string{
			string256,
		},
	},
	{
		strings.Repeat("a", 1000) + "\x00",
		[]string{
			strings.Repeat("a", 1000) + "\x00",
		},
	},
}

func TestEncodedHasPrefix(t *testing.T) {
	encoded := encodeList(shortRecords)
	for _, tc := range prefixTestCases {
		var actual []string
		var s cobs.Scanner
		s.Reset(encoded)
		for s.Next() {
			if cobs.EncodedHasPrefix(s.Encoded(), []byte(tc.prefix)) {
				decoded := make([]byte, len(s.Encoded()))
				n, err := s.Decode(decoded)
				require.NoError(t, err)
				actual = append(actual, string(decoded[:n]))
			}
		}
		assert.Equal(t, tc.expected, actual, "prefix %q", tc.prefix)
	}
}
