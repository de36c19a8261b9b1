package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_cipher_mock.go -package=mock

// CredentialCipher protects secrets the server must be able to read back,
// such as MetaTrader 5 terminal passwords.
//
// Sealed values are base64 strings of nonce || ciphertext. The binding
// string is authenticated but not stored, so a value sealed for one
// account cannot be opened for another.
type CredentialCipher interface {
	// Seal encrypts plaintext bound to binding.
	Seal(plaintext, binding string) (string, error)

	// Open reverses Seal. It returns ErrCredentialTampered when the value
	// was sealed with another key or binding, or was modified.
	Open(sealed, binding string) (string, error)
}
