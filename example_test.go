package bcrypt_test

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/uswriting/bcrypt"
)

// Example demonstrates the basic hash-then-verify flow.
func Example() {
	record, err := bcrypt.Hash("my-secret-password", bcrypt.MinCost)
	if err != nil {
		log.Fatal(err)
	}

	ok, err := bcrypt.Compare("my-secret-password", record)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ok)
	// Output: true
}

// ExampleCompare_wrongPassword shows that a wrong password is a false
// result, not an error.
func ExampleCompare_wrongPassword() {
	record, _ := bcrypt.Hash("hunter2", bcrypt.MinCost)

	ok, err := bcrypt.Compare("*******", record)
	fmt.Println(ok, err)
	// Output: false <nil>
}

// ExampleHash_tooLong shows the rejection of overlong passwords — the
// silent-truncation bug this package exists to prevent.
func ExampleHash_tooLong() {
	_, err := bcrypt.Hash(strings.Repeat("a", 72), bcrypt.DefaultCost)
	fmt.Println(errors.Is(err, bcrypt.ErrPasswordTooLong))
	// Output: true
}

// ExampleCompare_malformedRecord shows how to distinguish "not a valid
// hash" from "valid hash, wrong password".
func ExampleCompare_malformedRecord() {
	_, err := bcrypt.Compare("password", "not-a-bcrypt-record")
	fmt.Println(errors.Is(err, bcrypt.ErrInvalidHash))
	// Output: true
}

// ExampleCost shows reading the work factor back out of a stored record.
func ExampleCost() {
	record, _ := bcrypt.Hash("pw", 10)

	cost, _ := bcrypt.Cost(record)
	fmt.Println(cost)
	// Output: 10
}
