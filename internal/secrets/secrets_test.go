package secrets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGetter struct {
	values map[string]string
	calls  int
}

func (f *fakeGetter) GetSecret(ctx context.Context, name string, version string, options *azsecrets.GetSecretOptions) (azsecrets.GetSecretResponse, error) {
	f.calls++
	v, ok := f.values[name]
	if !ok {
		return azsecrets.GetSecretResponse{}, errors.New("SecretNotFound")
	}
	return azsecrets.GetSecretResponse{Secret: azsecrets.Secret{Value: &v}}, nil
}

func TestVaultClient_GetSecretCaches(t *testing.T) {
	getter := &fakeGetter{values: map[string]string{"whatsapp-number": "919876543210"}}
	vc := newVaultClient(getter, &VaultConfig{VaultName: "kv", CacheEnabled: true, CacheTTL: time.Minute}, zap.NewNop())

	for i := 0; i < 3; i++ {
		v, err := vc.GetSecret(context.Background(), "whatsapp-number")
		require.NoError(t, err)
		assert.Equal(t, "919876543210", v)
	}
	assert.Equal(t, 1, getter.calls)
}

func TestVaultClient_NoCache(t *testing.T) {
	getter := &fakeGetter{values: map[string]string{"a": "1"}}
	vc := newVaultClient(getter, &VaultConfig{VaultName: "kv"}, zap.NewNop())

	_, _ = vc.GetSecret(context.Background(), "a")
	_, _ = vc.GetSecret(context.Background(), "a")

	assert.Equal(t, 2, getter.calls)
}

func TestVaultClient_MissingSecret(t *testing.T) {
	vc := newVaultClient(&fakeGetter{values: map[string]string{}}, &VaultConfig{VaultName: "kv"}, zap.NewNop())

	_, err := vc.GetSecret(context.Background(), "missing")

	assert.ErrorContains(t, err, "missing")
}

func TestNewVaultClient_RequiresName(t *testing.T) {
	_, err := NewVaultClient(&VaultConfig{}, zap.NewNop())
	assert.Error(t, err)
}

func TestProvider_LookupPrefersEnvironment(t *testing.T) {
	t.Setenv(WhatsAppNumber.Env, "911111111111")
	getter := &fakeGetter{values: map[string]string{WhatsAppNumber.Vault: "919876543210"}}
	p := &Provider{
		vault:  newVaultClient(getter, &VaultConfig{VaultName: "kv"}, zap.NewNop()),
		logger: zap.NewNop(),
	}

	v, err := p.Lookup(context.Background(), WhatsAppNumber)
	require.NoError(t, err)
	assert.Equal(t, "911111111111", v)
	assert.Equal(t, 0, getter.calls)
}

func TestProvider_LookupFallsBackToVault(t *testing.T) {
	t.Setenv(DatabasePassword.Env, "")
	t.Setenv(StorageConnectionString.Env, "")
	getter := &fakeGetter{values: map[string]string{DatabasePassword.Vault: "s3cret"}}
	p := &Provider{
		vault:  newVaultClient(getter, &VaultConfig{VaultName: "kv"}, zap.NewNop()),
		logger: zap.NewNop(),
	}

	v, err := p.Lookup(context.Background(), DatabasePassword)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", v)

	_, err = p.Lookup(context.Background(), StorageConnectionString)
	assert.ErrorContains(t, err, StorageConnectionString.Vault)
}

func TestNewProvider_RequiresVaultName(t *testing.T) {
	_, err := NewProvider(&VaultConfig{}, zap.NewNop())
	assert.Error(t, err)
}
