package clinicv1

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestServicesRegistered(t *testing.T) {
	services := map[protoreflect.FullName]int{
		"clinic.v1.AuthService":       7,
		"clinic.v1.UserService":       7,
		"clinic.v1.InventoryService":  14,
		"clinic.v1.OrderService":      6,
		"clinic.v1.PreferenceService": 3,
		"clinic.v1.SyncService":       5,
	}
	for name, methods := range services {
		d, err := protoregistry.GlobalFiles.FindDescriptorByName(name)
		if err != nil {
			t.Errorf("%s not registered: %v", name, err)
			continue
		}
		sd, ok := d.(protoreflect.ServiceDescriptor)
		if !ok {
			t.Errorf("%s is not a service", name)
			continue
		}
		if got := sd.Methods().Len(); got != methods {
			t.Errorf("%s has %d methods, want %d", name, got, methods)
		}
	}
}

func TestOrderWireFormat(t *testing.T) {
	in := &Order{
		Id:        "order-1",
		Status:    "approved",
		CreatedAt: timestamppb.Now(),
		Items:     []*OrderItem{{ItemId: "7", Quantity: 5, Price: "6.80"}},
	}
	b, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out Order
	if err := proto.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !proto.Equal(in, &out) {
		t.Errorf("got %v, want %v", &out, in)
	}
	if out.ApprovedAt != nil {
		t.Error("unset timestamp must stay nil")
	}
}
