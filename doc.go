// Package datacontract provides:
//
//   - Compilation of declarative data contracts (YAML/JSON documents) into an executable Contract
//   - Validation of in-memory tabular Datasets against a Contract
//   - A stable, serializable Outcome carrying every failure case (row, field, check, value)
//
// Design policy:
//
//   - Keep the compiler and executor in the root package; they are pure and do no I/O.
//   - Document loading lives under document/, dataset loading under source/, rendering under report/,
//     and the CLI under cmd/datacontract.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, err := document.LoadFile("contract.yaml")
//	c, err := datacontract.Compile(doc)
//	ds, err := source.Load(ctx, "users.csv", source.Options{})
//	out := datacontract.Validate(c, ds)
package datacontract
