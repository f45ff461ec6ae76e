package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashSenha(t *testing.T) {
	hash, err := HashSenha("segredo123")
	assert.NoError(t, err)
	assert.NotEqual(t, "segredo123", hash)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("segredo123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("outra")))
}

func TestGerarSenhaTemporaria(t *testing.T) {
	a, err := GerarSenhaTemporaria()
	assert.NoError(t, err)
	assert.Len(t, a, 12)

	b, err := GerarSenhaTemporaria()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
