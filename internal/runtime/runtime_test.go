package runtime

import "testing"

func TestNewFlags(t *testing.T) {
	rt := New(true, false)
	if !rt.TestMode || rt.UnsafeMode {
		t.Errorf("flags = (%v, %v), want (true, false)", rt.TestMode, rt.UnsafeMode)
	}
}

func TestLibraryCache(t *testing.T) {
	rt := New(false, false)
	if _, ok := rt.Library("mathx"); ok {
		t.Fatal("unloaded library should not be found")
	}
	closed := false
	rt.StoreLibrary("mathx", "handle", func() { closed = true })
	h, ok := rt.Library("mathx")
	if !ok || h != "handle" {
		t.Fatalf("Library(mathx) = (%v, %v), want (handle, true)", h, ok)
	}
	rt.CleanUp()
	if !closed {
		t.Error("CleanUp should have run the registered close callback")
	}
}

func TestMarkLoadedIsIdempotent(t *testing.T) {
	rt := New(false, false)
	if rt.MarkLoaded("abc") {
		t.Fatal("first MarkLoaded call should report not-already-loaded")
	}
	if !rt.MarkLoaded("abc") {
		t.Fatal("second MarkLoaded call with the same hash should report already-loaded")
	}
	if rt.MarkLoaded("def") {
		t.Fatal("a different hash should not be considered already loaded")
	}
}

func TestInstallRootFromEnv(t *testing.T) {
	t.Setenv("RHEA_PATH", "")
	t.Setenv("N8_PATH", "")
	if got := InstallRootFromEnv(); got != "" {
		t.Fatalf("InstallRootFromEnv() = %q, want empty with neither var set", got)
	}

	t.Setenv("N8_PATH", "/opt/n8")
	if got := InstallRootFromEnv(); got != "/opt/n8" {
		t.Fatalf("InstallRootFromEnv() = %q, want fallback to N8_PATH", got)
	}

	t.Setenv("RHEA_PATH", "/opt/rhea")
	if got := InstallRootFromEnv(); got != "/opt/rhea" {
		t.Fatalf("InstallRootFromEnv() = %q, want RHEA_PATH to take priority", got)
	}
}
