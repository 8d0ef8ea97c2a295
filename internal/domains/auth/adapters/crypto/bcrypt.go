package crypto

import "golang.org/x/crypto/bcrypt"

// Bcrypt hashes passwords with bcrypt at a fixed cost.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a hasher using bcrypt.DefaultCost when cost is zero.
func NewBcrypt(cost int) Bcrypt {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return Bcrypt{cost: cost}
}

func (b Bcrypt) Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (b Bcrypt) Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
