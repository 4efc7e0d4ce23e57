// Package reportmock provides a generated mock of the [report.YankOracle]
// interface for use in report-engine tests.
package reportmock

//go:generate -command mockgen go run go.uber.org/mock/mockgen -package=reportmock -destination=./mocks.go github.com/quay/pkgaudit/report YankOracle
//go:generate mockgen
