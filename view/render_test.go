package view

import (
	"testing"

	"weather-widget/models"
)

func TestLoadingRemembersSettledState(t *testing.T) {
	found := Succeeded(models.WeatherResult{City: "Rome", Country: "IT", TempKelvin: 290, Category: models.Clear, Matched: true})

	loading := Loading(found)
	if loading.Phase() != PhaseLoading {
		t.Fatalf("phase = %v", loading.Phase())
	}
	if _, ok := loading.Result(); ok {
		t.Errorf("loading state should not expose a result")
	}
	if !loading.Settled().Equal(found) {
		t.Errorf("Settled() = %+v", loading.Settled())
	}

	// A second submission while loading keeps the first settled state
	again := Loading(loading)
	if !again.Settled().Equal(found) {
		t.Errorf("nested Settled() = %+v", again.Settled())
	}
	if !Loading(Idle()).Settled().Equal(Idle()) {
		t.Errorf("loading from idle should settle to idle")
	}
}

func TestFromResult(t *testing.T) {
	if FromResult(models.NotFoundResult()).Phase() != PhaseNotFound {
		t.Errorf("not-found result should map to NotFound")
	}
	r := models.WeatherResult{City: "Oslo", Category: models.Snow, Matched: true}
	s := FromResult(r)
	got, ok := s.Result()
	if s.Phase() != PhaseSucceeded || !ok || got != r {
		t.Errorf("FromResult = %v %+v", s.Phase(), got)
	}
}

func TestRender(t *testing.T) {
	clouds := models.WeatherResult{City: "London", Country: "GB", TempKelvin: 283.15, Category: models.Clouds, Matched: true}
	storm := models.WeatherResult{City: "Miami", Country: "US", TempKelvin: 300, Category: "Thunderstorm"}

	tests := []struct {
		name string
		snap Snapshot
		want Panel
		text string
	}{
		{
			name: "idle",
			snap: Snapshot{State: Idle()},
			want: Panel{Phase: "idle"},
			text: "",
		},
		{
			name: "first lookup loading",
			snap: Snapshot{State: Loading(Idle()), Seq: 1},
			want: Panel{Phase: "loading", Loading: true, Icon: models.LoadingIcon},
			text: "",
		},
		{
			name: "succeeded",
			snap: Snapshot{State: Succeeded(clouds), Expanded: true},
			want: Panel{Phase: "succeeded", Expanded: true, Location: "London, GB", Icon: models.IconFor(models.Clouds), Label: "Clouds", Temperature: "10.00°C"},
			text: "London, GB\n☁ Clouds\n🌡 10.00°C\n",
		},
		{
			name: "unmatched category",
			snap: Snapshot{State: Succeeded(storm), Expanded: true},
			want: Panel{Phase: "succeeded", Expanded: true, Location: "Miami, US", Temperature: "26.85°C"},
			text: "Miami, US\n🌡 26.85°C\n",
		},
		{
			name: "not found",
			snap: Snapshot{State: NotFound(), Expanded: true},
			want: Panel{Phase: "notFound", Expanded: true, Icon: models.IconFor(models.NotFound), Label: "Not Found"},
			text: "? Not Found\n",
		},
		{
			name: "loading over a result",
			snap: Snapshot{State: Loading(Succeeded(clouds)), Expanded: true},
			want: Panel{Phase: "loading", Expanded: true, Loading: true, Icon: models.LoadingIcon},
			text: "… loading\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.snap)
			if got != tt.want {
				t.Errorf("Render = %+v, want %+v", got, tt.want)
			}
			if text := got.Text(); text != tt.text {
				t.Errorf("Text = %q, want %q", text, tt.text)
			}
		})
	}
}
