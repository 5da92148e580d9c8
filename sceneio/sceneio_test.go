package sceneio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeScene(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeScene(t, `{"objects":[{"type":"cube","pos":[0,0,-3]}]}`)
	s, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, s.Camera, "expected a default camera")
	require.Len(t, s.Meshes, 1)
	require.Equal(t, float32(64), s.Meshes[0].Shininess, "expected default shininess 64")
}

func TestLoadDropsDisabledEntities(t *testing.T) {
	path := writeScene(t, `{"objects":[{"type":"cube","pos":[0,0,0],"disable":true}]}`)
	s, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, s.Meshes, "expected disabled object to be dropped")
}

func TestLoadRejectsUnknownType(t *testing.T) {
	path := writeScene(t, `{"objects":[{"type":"sphere","pos":[0,0,0]}]}`)
	_, err := Load(path)
	require.Error(t, err, "expected error for unknown object type")
}

func TestLoadRejectsMissingPos(t *testing.T) {
	path := writeScene(t, `{"objects":[{"type":"cube"}]}`)
	_, err := Load(path)
	require.Error(t, err, "expected error for missing required pos field")
}

func TestLoadPointLightSpawnsEmitterIcosphere(t *testing.T) {
	path := writeScene(t, `{"lights":[{"type":"point","pos":[1,2,3],"d_size":0.2}]}`)
	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Lights, 1)
	require.Len(t, s.Meshes, 1, "expected the light's auto-spawned emitter mesh")

	emitter := s.Meshes[0]
	require.True(t, emitter.IsEmitter(), "expected auto-spawned light mesh to be an emitter")
	require.Equal(t, float32(0.2), emitter.Scale.X, "expected emitter scaled by d_size 0.2")
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err, "expected error for missing scene file")
}

func TestLoadMalformedJSONReturnsError(t *testing.T) {
	path := writeScene(t, `{not json`)
	_, err := Load(path)
	require.Error(t, err, "expected error for malformed JSON")
}
