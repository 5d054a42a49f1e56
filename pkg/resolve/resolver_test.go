package resolve

import (
	"testing"

	"github.com/YuqiYue/rosqa-generator/pkg/model"
)

func newTestNode(t *testing.T) (*model.NodeType, *model.Node) {
	t.Helper()
	nt := model.NewNodeType("Worker")
	return nt, model.NewNode("worker_1", nt)
}

func TestPublishesPlainEndpoint(t *testing.T) {
	nt, node := newTestNode(t)
	nt.AddPublish(model.Endpoint{Name: "/scan", Type: "sensor/Scan"})

	got := Publishes(node)
	if len(got) != 1 || !got.Contains("/scan") {
		t.Errorf("Publishes = %v", got.Sorted())
	}
}

func TestContentResolution(t *testing.T) {
	nt, node := newTestNode(t)
	nt.AddContentService(model.ContentService{Param: "svc_name", Type: "pkg/Type"})

	// Unassigned: the literal placeholder stands in
	got := Uses(node)
	if len(got) != 1 || !got.Contains("content(svc_name)") {
		t.Fatalf("unassigned Uses = %v", got.Sorted())
	}

	// Assigned: the quoted value resolves, the placeholder disappears
	node.ParamAssigns["svc_name"] = &model.ParameterAssign{Name: "svc_name", Value: `"/real_service"`}
	got = Uses(node)
	if !got.Contains("/real_service") {
		t.Errorf("Uses missing resolved name: %v", got.Sorted())
	}
	if got.Contains("content(svc_name)") {
		t.Errorf("placeholder survived resolution: %v", got.Sorted())
	}
}

func TestContentResolutionInExplicitEndpoints(t *testing.T) {
	nt, node := newTestNode(t)
	nt.AddPublish(model.Endpoint{Name: "content(out_topic)", Type: "std_msgs/String"})

	if got := Publishes(node); !got.Contains("content(out_topic)") {
		t.Errorf("unassigned content publish = %v", got.Sorted())
	}

	node.ParamAssigns["out_topic"] = &model.ParameterAssign{Name: "out_topic", Value: `"/status"`}
	if got := Publishes(node); !got.Contains("/status") || got.Contains("content(out_topic)") {
		t.Errorf("resolved content publish = %v", got.Sorted())
	}
}

func TestRemapAppliesToResolvedName(t *testing.T) {
	nt, node := newTestNode(t)
	nt.AddContentService(model.ContentService{Param: "svc", Type: "pkg/Type"})
	node.ParamAssigns["svc"] = &model.ParameterAssign{Name: "svc", Value: `"/real"`}
	node.Remaps = append(node.Remaps,
		// Written against the placeholder: must never fire, because
		// remaps see post-resolution names only
		model.Remap{From: "content(svc)", To: "/wrong"},
		model.Remap{From: "/real", To: "/renamed"},
	)

	got := Uses(node)
	if !got.Contains("/renamed") {
		t.Errorf("Uses = %v, want /renamed", got.Sorted())
	}
	if got.Contains("/wrong") {
		t.Errorf("placeholder remap fired: %v", got.Sorted())
	}
}

func TestRemapFirstMatchWins(t *testing.T) {
	nt, node := newTestNode(t)
	nt.AddPublish(model.Endpoint{Name: "/scan", Type: "sensor/Scan"})
	node.Remaps = append(node.Remaps,
		model.Remap{From: "/scan", To: "/scan/raw"},
		model.Remap{From: "/scan", To: "/scan/other"},
	)

	got := Publishes(node)
	if !got.Contains("/scan/raw") || got.Contains("/scan/other") {
		t.Errorf("first remap must win: %v", got.Sorted())
	}
}

func TestRemapDoesNotChain(t *testing.T) {
	nt, node := newTestNode(t)
	nt.AddPublish(model.Endpoint{Name: "/a", Type: "x/Y"})
	node.Remaps = append(node.Remaps,
		model.Remap{From: "/a", To: "/b"},
		model.Remap{From: "/b", To: "/c"},
	)

	got := Publishes(node)
	if !got.Contains("/b") || got.Contains("/c") {
		t.Errorf("remaps must apply once, not chain: %v", got.Sorted())
	}
}

func TestDuplicatesCollapse(t *testing.T) {
	nt, node := newTestNode(t)
	nt.AddUse(model.Endpoint{Name: "/svc", Type: "x/Y"})
	nt.AddContentService(model.ContentService{Param: "p", Type: "x/Y"})
	node.ParamAssigns["p"] = &model.ParameterAssign{Name: "p", Value: "/svc"}

	got := Uses(node)
	if len(got) != 1 {
		t.Errorf("Uses = %v, want single /svc", got.Sorted())
	}
}

func TestIntersectsIgnoresPlaceholders(t *testing.T) {
	left := NameSet{"content(p)": {}, "/shared": {}}
	right := NameSet{"content(p)": {}}
	if left.Intersects(right) {
		t.Error("placeholders must never count as shared endpoints")
	}
	right["/shared"] = struct{}{}
	if !left.Intersects(right) {
		t.Error("real shared name not detected")
	}
}
