package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmrtd/sealcodec/mrz"
)

func TestCommands(t *testing.T) {
	t.Run("encode", func(t *testing.T) {
		cmd := EncodeCommand()
		require.NotNil(t, cmd)
		require.Equal(t, "encode", cmd.Name)
	})

	t.Run("decode", func(t *testing.T) {
		cmd := DecodeCommand()
		require.NotNil(t, cmd)
		require.Equal(t, "decode", cmd.Name)
		require.Len(t, cmd.Flags, 4) // --file, --base64, --profile, --json
	})

	t.Run("mrz", func(t *testing.T) {
		cmd := MRZCommand()
		require.NotNil(t, cmd)
		require.Equal(t, "mrz", cmd.Name)
		require.Len(t, cmd.Commands, 2)
	})

	t.Run("inspect", func(t *testing.T) {
		cmd := InspectCommand()
		require.NotNil(t, cmd)
		require.Equal(t, "inspect", cmd.Name)
	})
}

func TestNewProfile(t *testing.T) {
	t.Run("every profile constructs", func(t *testing.T) {
		for _, name := range []string{"crew-certificate", "crew-id", "crew-license", "events-passport", "events-visa"} {
			doc, err := newProfile(name)
			require.NoError(t, err, name)
			require.NotNil(t, doc.Document())
			require.NotNil(t, doc.Seal())
		}
	})

	t.Run("profile formats", func(t *testing.T) {
		doc, err := newProfile("crew-id")
		require.NoError(t, err)
		assert.Equal(t, mrz.TD1, doc.Document().Format())

		doc, err = newProfile("events-visa")
		require.NoError(t, err)
		assert.Equal(t, mrz.TD3, doc.Document().Format())
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := newProfile("passport")
		require.Error(t, err)
	})
}

func TestParseFeatureFlag(t *testing.T) {
	t.Run("hex tag", func(t *testing.T) {
		tag, value, err := parseFeatureFlag("0x02=1A2B")
		require.NoError(t, err)
		assert.Equal(t, byte(0x02), tag)
		assert.Equal(t, []byte{0x1A, 0x2B}, value)
	})

	t.Run("decimal tag", func(t *testing.T) {
		tag, value, err := parseFeatureFlag("7=FF")
		require.NoError(t, err)
		assert.Equal(t, byte(0x07), tag)
		assert.Equal(t, []byte{0xFF}, value)
	})

	t.Run("malformed specs", func(t *testing.T) {
		_, _, err := parseFeatureFlag("0x02")
		require.Error(t, err)
		_, _, err = parseFeatureFlag("tag=1A")
		require.Error(t, err)
		_, _, err = parseFeatureFlag("0x02=nothex")
		require.Error(t, err)
		_, _, err = parseFeatureFlag("512=1A")
		require.Error(t, err)
	})
}

func TestAssignSealBytes(t *testing.T) {
	t.Run("accepts signed and unsigned seals", func(t *testing.T) {
		source, err := newProfile("crew-certificate")
		require.NoError(t, err)

		unsigned, err := source.Seal().UnsignedSeal()
		require.NoError(t, err)
		target, err := newProfile("crew-certificate")
		require.NoError(t, err)
		require.NoError(t, assignSealBytes(target, unsigned))

		source.Seal().SetSignatureData([]byte{0x01})
		signed, err := source.Seal().SignedSeal()
		require.NoError(t, err)
		require.NoError(t, assignSealBytes(target, signed))
		assert.Equal(t, []byte{0x01}, target.Seal().SignatureData())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		target, err := newProfile("crew-certificate")
		require.NoError(t, err)
		require.Error(t, assignSealBytes(target, []byte{0x00, 0x01, 0x02}))
	})
}
