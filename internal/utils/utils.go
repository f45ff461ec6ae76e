package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const tamanhoSenhaTemporaria = 12

// HashSenha gera o hash bcrypt gravado no cadastro do funcionário.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GerarSenhaTemporaria sorteia a senha provisória entregue uma única vez na
// resposta de criação do funcionário.
func GerarSenhaTemporaria() (string, error) {
	const alfabeto = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	senha := make([]byte, tamanhoSenhaTemporaria)
	for i := range senha {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alfabeto))))
		if err != nil {
			return "", err
		}
		senha[i] = alfabeto[n.Int64()]
	}
	return string(senha), nil
}
