package identifying

import (
	"encoding/hex"

	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	"golang.org/x/crypto/blake2b"
)

const nationalIDLength = 11

// hashNationalID normaliza o CPF para dígitos e aplica BLAKE2b-256 com a chave do servidor.
// O valor em claro nunca é persistido.
func hashNationalID(key []byte, nationalID *string) (*string, error) {
	digits := utils.OnlyDigits(nationalID)
	if digits == nil {
		return nil, nil
	}
	if len(*digits) != nationalIDLength {
		return nil, ErrInvalidNationalID
	}

	h, err := blake2b.New256(key)
	if err != nil {
		return nil, err
	}
	h.Write([]byte(*digits))

	sum := hex.EncodeToString(h.Sum(nil))
	return &sum, nil
}
