package cloudfolder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDisabledByDefault(t *testing.T) {
	t.Setenv("CLOUD_FOLDERS_ENABLED", "")
	t.Setenv("S3_ACCESS_KEY_ID", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.IsEnabled())
}

func TestLoadConfigRequiresCredentialsWhenEnabled(t *testing.T) {
	t.Setenv("CLOUD_FOLDERS_ENABLED", "true")
	t.Setenv("S3_ACCESS_KEY_ID", "")
	t.Setenv("S3_SECRET_ACCESS_KEY", "")
	t.Setenv("S3_BUCKET_NAME", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_ACCESS_KEY_ID")
}

func TestNewS3ManagerRejectsDisabledConfig(t *testing.T) {
	_, err := NewS3Manager(&Config{Enabled: false})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestDisabledManager(t *testing.T) {
	var m Manager = Disabled{}
	assert.False(t, m.IsConfigured())

	_, err := m.CreateVendorFolders(context.Background(), "CloudServe")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = m.CreateProjectFolders(context.Background(), "Migration", "vendors/CloudServe/")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Acme-Cloud", sanitizeName("Acme/Cloud"))
	assert.Equal(t, "Q3 Review", sanitizeName("  Q3 Review  "))
	assert.Equal(t, "untitled", sanitizeName("   "))
}
