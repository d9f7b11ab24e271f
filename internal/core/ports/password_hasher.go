package ports

// PasswordHasher turns a plaintext password into the stored hash. Implementations must be
// deterministic so the hash can be used directly in a lookup predicate.
type PasswordHasher interface {
	Hash(plaintext string) string
}
