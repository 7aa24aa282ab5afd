package launcher

import (
	"errors"
	"testing"
)

func TestStageString(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageUnknown, "unknown"},
		{StageResolve, "resolve"},
		{StageConfig, "config"},
		{StageLocate, "locate"},
		{StageSpawn, "spawn"},
		{StageWait, "wait"},
		{Stage(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.want)
		}
	}
}

func TestLaunchError(t *testing.T) {
	err := &LaunchError{
		Stage: StageLocate,
		Path:  "/pkg/vendor/x/viberun/viberun",
		Err:   ErrMissingBinary,
	}

	want := `launcher locate "/pkg/vendor/x/viberun/viberun": launcher: binary missing`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrMissingBinary) {
		t.Error("LaunchError does not unwrap to its underlying error")
	}
}
