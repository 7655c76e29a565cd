package dhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncaa-savior/ndb/dfield"
	"ncaa-savior/ndb/dstruct"
	"ncaa-savior/internal/ndbtest"
)

func TestFingerprintRecords(t *testing.T) {
	records := dstruct.Records{
		Columns: []string{"PFNA", "PGID", "PRAW"},
		Rows: [][]any{
			{"JOHN", uint64(7), dfield.Hex{0x01}},
			{"AL", uint64(255), dfield.Hex{0x02}},
		},
	}
	base := FingerprintRecords(records)
	assert.Equal(t, base, FingerprintRecords(records))

	swapped := records
	swapped.Rows = [][]any{records.Rows[1], records.Rows[0]}
	assert.NotEqual(t, base, FingerprintRecords(swapped))

	// same bytes, different type
	retyped := dstruct.Records{Columns: []string{"PFNA"}, Rows: [][]any{{"AB"}}}
	asHex := dstruct.Records{Columns: []string{"PFNA"}, Rows: [][]any{{dfield.Hex("AB")}}}
	assert.NotEqual(t, FingerprintRecords(retyped), FingerprintRecords(asHex))
}

func TestFingerprintDB(t *testing.T) {
	bs := ndbtest.File{
		Tables: []ndbtest.Table{
			{
				Name:    "TEAM",
				Fields:  []dfield.Field{{Type: dfield.FieldTypeUInt, Name: "TGID", Bits: 8}},
				Records: [][]byte{{1}, {2}},
			},
			{
				Name:    "PLAY",
				Fields:  []dfield.Field{{Type: dfield.FieldTypeUInt, Name: "PGID", Bits: 8}},
				Records: [][]byte{{1}, {2}},
			},
		},
	}.Build()
	db, err := dstruct.ToStructuredDB(bs, dstruct.DefaultOptions())
	require.NoError(t, err)

	fingerprints := FingerprintDB(*db)
	require.Len(t, fingerprints, 2)
	assert.Equal(t, "TEAM", fingerprints[0].Name)
	assert.Equal(t, "PLAY", fingerprints[1].Name)
	// column names take part in the fingerprint
	assert.NotEqual(t, fingerprints[0].Fingerprint, fingerprints[1].Fingerprint)
}
