package property

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	code "github.com/nqn-dd/NovoMD/pkg/common/code"
	core "github.com/nqn-dd/NovoMD/pkg/core/property"
)

const waterXYZ = `3
water
O    0.000000    0.000000    0.000000
H    0.957000    0.000000    0.000000
H   -0.240000    0.927000    0.000000
`

func svcForTest(t *testing.T) core.Service {
	t.Helper()
	return New()
}

func one(t *testing.T, structure, format, prop string) *core.Result {
	t.Helper()
	resp, err := svcForTest(t).Calculate(context.Background(), &core.CalcReq{
		Structure:  structure,
		Format:     format,
		Properties: []string{prop},
	})
	if err != nil {
		t.Fatalf("Calculate(%q, %q): %v", structure, prop, err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(resp.Results))
	}
	return resp.Results[0]
}

func TestCalculateImplementedProperty(t *testing.T) {
	r := one(t, "CCO", "smiles", "molecular_weight")
	if r.Error != nil {
		t.Fatalf("unexpected error: %+v", r.Error)
	}
	if r.Value == nil {
		t.Fatal("no value")
	}
	if math.Abs(*r.Value-46.069) > 0.01 {
		t.Errorf("value = %v, want 46.069", *r.Value)
	}
	if r.Units != "g/mol" {
		t.Errorf("units = %q, want g/mol", r.Units)
	}
	if r.Method == "" {
		t.Error("method must name the algorithm")
	}
}

func TestCalculateUnimplementedRefuses(t *testing.T) {
	r := one(t, "CCO", "smiles", "binding_affinity")
	if r.Value != nil {
		t.Fatalf("refusal carries a value: %v", *r.Value)
	}
	if r.Units != "" || r.Method != "" {
		t.Error("refusal must not carry units or method")
	}
	if r.Error == nil {
		t.Fatal("no error on refusal")
	}
	if r.Error.Code != code.UnsupportedCalcErr.Code {
		t.Errorf("code = %d, want %d", r.Error.Code, code.UnsupportedCalcErr.Code)
	}
	if !strings.Contains(r.Error.Msg, "simulation engine") {
		t.Errorf("refusal must name the missing integration, got %q", r.Error.Msg)
	}
}

func TestCalculateUnknownProperty(t *testing.T) {
	r := one(t, "CCO", "smiles", "frobnication_index")
	if r.Error == nil || r.Error.Code != code.UnknownPropertyErr.Code {
		t.Fatalf("got %+v, want code %d", r.Error, code.UnknownPropertyErr.Code)
	}
}

func TestCalculateInvalidInput(t *testing.T) {
	_, err := svcForTest(t).Calculate(context.Background(), &core.CalcReq{
		Structure:  "C1CC",
		Format:     "smiles",
		Properties: []string{"molecular_weight"},
	})
	if err == nil {
		t.Fatal("want error for malformed notation")
	}
	if !errors.Is(err, code.InvalidInputErr) {
		t.Errorf("err = %v, want InvalidInputErr", err)
	}
}

func TestCalculateRepresentationMismatch(t *testing.T) {
	// 3D property on a graph-only structure
	r := one(t, "CCO", "smiles", "sasa")
	if r.Error == nil || r.Error.Code != code.NeedCoordinatesErr.Code {
		t.Fatalf("got %+v, want code %d", r.Error, code.NeedCoordinatesErr.Code)
	}

	// graph property on bare coordinates
	r = one(t, waterXYZ, "xyz", "tpsa")
	if r.Error == nil || r.Error.Code != code.NeedConnectivityErr.Code {
		t.Fatalf("got %+v, want code %d", r.Error, code.NeedConnectivityErr.Code)
	}
}

func TestCalculateBatchMixedOutcomes(t *testing.T) {
	resp, err := svcForTest(t).Calculate(context.Background(), &core.CalcReq{
		Structure:  "CCO",
		Properties: []string{"molecular_weight", "binding_affinity", "nope"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(resp.Results))
	}
	if resp.Results[0].Value == nil || resp.Results[0].Error != nil {
		t.Error("first result should carry a value")
	}
	if resp.Results[1].Error == nil || resp.Results[1].Error.Code != code.UnsupportedCalcErr.Code {
		t.Error("second result should be a refusal")
	}
	if resp.Results[2].Error == nil || resp.Results[2].Error.Code != code.UnknownPropertyErr.Code {
		t.Error("third result should be unknown")
	}
}

func TestCalculateRequiresExactlyOneSource(t *testing.T) {
	s := svcForTest(t)
	_, err := s.Calculate(context.Background(), &core.CalcReq{
		Properties: []string{"molecular_weight"},
	})
	if !errors.Is(err, code.ParamErr) {
		t.Errorf("empty request: err = %v, want ParamErr", err)
	}

	_, err = s.Calculate(context.Background(), &core.CalcReq{
		Structure:  "CCO",
		Compound:   "ethanol",
		Properties: []string{"molecular_weight"},
	})
	if !errors.Is(err, code.ParamErr) {
		t.Errorf("both sources: err = %v, want ParamErr", err)
	}
}

func TestCalculateIdempotent(t *testing.T) {
	first := one(t, "CCO", "", "tpsa")
	second := one(t, "CCO", "", "tpsa")
	if first.Value == nil || second.Value == nil {
		t.Fatal("missing values")
	}
	if *first.Value != *second.Value {
		t.Errorf("values differ across runs: %v vs %v", *first.Value, *second.Value)
	}
}

func TestCalculateConcurrent(t *testing.T) {
	s := svcForTest(t)
	req := &core.CalcReq{
		Structure:  "c1ccccc1",
		Properties: []string{"molecular_weight", "tpsa", "ring_count", "vdw_volume"},
	}

	var wg sync.WaitGroup
	values := make([]float64, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := s.Calculate(context.Background(), req)
			if err != nil {
				t.Errorf("worker %d: %v", i, err)
				return
			}
			for _, r := range resp.Results {
				if r.Property == "vdw_volume" && r.Value != nil {
					values[i] = *r.Value
				}
			}
		}(i)
	}
	wg.Wait()

	for i, v := range values {
		if math.Abs(v-81.18) > 0.01 {
			t.Errorf("worker %d volume = %v, want 81.18", i, v)
		}
	}
}

func TestCalculateStream(t *testing.T) {
	var got []*core.Result
	err := svcForTest(t).CalculateStream(context.Background(), &core.CalcReq{
		Structure:  "CCO",
		Properties: []string{"molecular_weight", "binding_affinity"},
	}, func(r *core.Result) {
		got = append(got, r)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("streamed %d results, want 2", len(got))
	}
	if got[0].Value == nil {
		t.Error("first streamed result should carry a value")
	}
	if got[1].Error == nil {
		t.Error("second streamed result should be a refusal")
	}
}

func TestCapabilities(t *testing.T) {
	caps := svcForTest(t).Capabilities(context.Background())
	if len(caps.Implemented) == 0 || len(caps.Pending) == 0 {
		t.Fatalf("capabilities empty: %d implemented, %d pending", len(caps.Implemented), len(caps.Pending))
	}

	names := map[string]bool{}
	for _, c := range caps.Implemented {
		names[c.Name] = true
		if c.Method == "" || c.Units == "" {
			t.Errorf("capability %q missing metadata", c.Name)
		}
	}
	for _, want := range []string{"molecular_weight", "tpsa", "sasa", "radius_of_gyration"} {
		if !names[want] {
			t.Errorf("implemented set missing %q", want)
		}
	}

	for _, p := range caps.Pending {
		if names[p.Name] {
			t.Errorf("%q is both implemented and pending", p.Name)
		}
		if p.Guidance == "" {
			t.Errorf("pending %q has no guidance", p.Name)
		}
	}
}

func TestConvert(t *testing.T) {
	s := svcForTest(t)

	resp, err := s.Convert(context.Background(), &core.ConvertReq{
		Structure: waterXYZ, To: "summary",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Content, "formula: H2O") {
		t.Errorf("summary missing formula: %q", resp.Content)
	}

	resp, err = s.Convert(context.Background(), &core.ConvertReq{
		Structure: waterXYZ, To: "pdb",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Content, "ATOM") {
		t.Errorf("pdb output missing records: %.40q", resp.Content)
	}

	_, err = s.Convert(context.Background(), &core.ConvertReq{
		Structure: "CCO", To: "xyz",
	})
	if !errors.Is(err, code.NeedCoordinatesErr) {
		t.Errorf("smiles to xyz: err = %v, want NeedCoordinatesErr", err)
	}
}
