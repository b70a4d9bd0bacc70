package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerNamesAndConfigures(t *testing.T) {
	require.NoError(t, InitLogger("production"))
	log := GetLogger()
	require.NotNil(t, log)

	// The named logger tags every entry with the generator's identity.
	entry := log.Check(log.Level(), "stage record")
	if entry != nil {
		assert.Equal(t, "novagen", entry.LoggerName)
	}

	require.NoError(t, InitLogger("development"))
	assert.NotNil(t, GetLogger())
}

func TestGetLoggerWithoutInit(t *testing.T) {
	logger = nil
	assert.NotNil(t, GetLogger())
}
