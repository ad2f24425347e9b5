package graphics_test

import (
	"reflect"
	"testing"

	"cubeview/internal/gpu"
	"cubeview/internal/gpu/gputest"
	"cubeview/internal/graphics"
)

func TestApplyPipelineStateMapsToggles(t *testing.T) {
	tests := []struct {
		name    string
		toggles graphics.RenderToggles
		want    []string
	}{
		{
			name:    "all on",
			toggles: graphics.RenderToggles{DepthTest: true, Blend: true, Wireframe: true, Culling: true},
			want: []string{
				"Enable(DepthTest)",
				"Enable(Blend)",
				"BlendFunc(2,3)",
				"PolygonMode(Line)",
				"Enable(CullFace)",
			},
		},
		{
			name:    "all off",
			toggles: graphics.RenderToggles{},
			want: []string{
				"Disable(DepthTest)",
				"Disable(Blend)",
				"PolygonMode(Fill)",
				"Disable(CullFace)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := gputest.New()
			graphics.ApplyPipelineState(dev, tt.toggles)
			if !reflect.DeepEqual(dev.Calls, tt.want) {
				t.Errorf("expected calls %v, got %v", tt.want, dev.Calls)
			}
		})
	}
}

func TestApplyPipelineStateBlendFactors(t *testing.T) {
	dev := gputest.New()
	graphics.ApplyPipelineState(dev, graphics.RenderToggles{Blend: true})
	if dev.BlendSrc != gpu.SrcAlpha || dev.BlendDst != gpu.OneMinusSrcAlpha {
		t.Errorf("expected SRC_ALPHA/ONE_MINUS_SRC_ALPHA, got %d/%d", dev.BlendSrc, dev.BlendDst)
	}
}

func TestApplyPipelineStateIdempotent(t *testing.T) {
	for _, toggles := range []graphics.RenderToggles{
		{DepthTest: true, Blend: true, Wireframe: true, Culling: true},
		{DepthTest: true, Wireframe: true},
		{Blend: true, Culling: true},
		{},
	} {
		dev := gputest.New()
		graphics.ApplyPipelineState(dev, toggles)
		first := dev.Transitions
		enabled := map[gpu.Capability]bool{}
		for k, v := range dev.Enabled {
			enabled[k] = v
		}
		polygon := dev.Polygon

		graphics.ApplyPipelineState(dev, toggles)
		if dev.Transitions != first {
			t.Errorf("%+v: second apply caused %d extra transitions", toggles, dev.Transitions-first)
		}
		if !reflect.DeepEqual(dev.Enabled, enabled) || dev.Polygon != polygon {
			t.Errorf("%+v: state changed on second apply", toggles)
		}
	}
}

func TestApplyPipelineStateWireframeOff(t *testing.T) {
	dev := gputest.New()
	graphics.ApplyPipelineState(dev, graphics.RenderToggles{Wireframe: true})
	graphics.ApplyPipelineState(dev, graphics.RenderToggles{Wireframe: false})
	if dev.Polygon != gpu.Fill {
		t.Errorf("expected fill mode, got %s", dev.Polygon)
	}
}
