package compare

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCompareProperties(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Comparison Engine Suite")
}
