package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecords(t *testing.T) {
	in := strings.NewReader("Actor\tMovie\tYear\n" +
		"Kevin Bacon\tApollo 13\t1995\n" +
		"Tom Hanks\tApollo 13\t1995\n")

	records, err := ReadRecords(in)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, Record{Actor: "Kevin Bacon", Title: "Apollo 13", Year: 1995}, records[0])
	assert.Equal(t, Record{Actor: "Tom Hanks", Title: "Apollo 13", Year: 1995}, records[1])
}

func TestReadRecordsHeaderOnly(t *testing.T) {
	records, err := ReadRecords(strings.NewReader("Actor\tMovie\tYear\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadRecordsEmptyInput(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadRecordsFieldCount(t *testing.T) {
	in := strings.NewReader("Actor\tMovie\tYear\n" +
		"Kevin Bacon\tApollo 13\t1995\n" +
		"Tom Hanks\tApollo 13\n")

	_, err := ReadRecords(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFieldCount)

	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, 3, dataErr.Line)
	assert.Equal(t, "read record", dataErr.Op)
}

func TestReadRecordsBadYear(t *testing.T) {
	in := strings.NewReader("Actor\tMovie\tYear\n" +
		"Kevin Bacon\tApollo 13\tninety-five\n")

	_, err := ReadRecords(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrYearNotInteger)

	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, 2, dataErr.Line)
}

func TestReadPairs(t *testing.T) {
	in := strings.NewReader("Actor1\tActor2\n" +
		"Kevin Bacon\tTom Hanks\n" +
		"Tom Hanks\tBill Paxton\n")

	pairs, err := ReadPairs(in)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, [2]string{"Kevin Bacon", "Tom Hanks"}, pairs[0])
	assert.Equal(t, [2]string{"Tom Hanks", "Bill Paxton"}, pairs[1])
}

func TestReadPairsFieldCount(t *testing.T) {
	in := strings.NewReader("Actor1\tActor2\n" +
		"Kevin Bacon\tTom Hanks\tBill Paxton\n")

	_, err := ReadPairs(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFieldCount)

	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, 2, dataErr.Line)
	assert.Equal(t, "read pair", dataErr.Op)
}

func TestReadTargets(t *testing.T) {
	in := strings.NewReader("Actor\n" +
		"Kevin Bacon\n" +
		"\n" +
		"Tom Hanks\n")

	targets, err := ReadTargets(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kevin Bacon", "Tom Hanks"}, targets)
}

func TestDataErrorChain(t *testing.T) {
	err := &DataError{Op: "read record", Line: 7, Cause: ErrFieldCount}
	assert.Equal(t, "read record: line 7: row does not have the expected field count", err.Error())
	assert.True(t, errors.Is(err, ErrFieldCount))
	assert.False(t, errors.Is(err, ErrYearNotInteger))
}
