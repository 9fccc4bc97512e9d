package turtle_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTurtle(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Turtle Suite")
}
