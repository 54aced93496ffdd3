package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec is the symmetric parameter codec shared with the Attendance API.
//
// The scheme is AES-128-CBC with PKCS#7 padding under a fixed key and a fixed
// IV, and the ciphertext travels as standard padded Base64. It is
// deterministic: equal plaintexts always produce equal ciphertexts, and there
// is no integrity tag. The backend decrypts query parameters with the same
// key pair, so these properties must not change unilaterally.
type Codec interface {
	// Encrypt returns the Base64 ciphertext of plaintext. It cannot fail once
	// the codec has been constructed.
	Encrypt(plaintext string) string

	// Decrypt reverses Encrypt. It returns an error wrapping ErrDecryption
	// for malformed Base64, a ciphertext that is not a whole number of
	// blocks, bad padding, or a plaintext that is not valid UTF-8.
	Decrypt(ciphertext string) (string, error)
}
