// Package clinicv1 holds the protobuf messages and gRPC stubs of the clinic
// service. Sources live in api/proto/clinic/v1.
package clinicv1

//go:generate sh -c "cd ../.. && buf generate"
