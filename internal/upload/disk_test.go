package upload

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiskStoreSaveAndResolve(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStore(dir)
	require.NoError(t, err)

	p, err := s.Save(context.Background(), "deed.pdf", strings.NewReader("parcel deed"))
	require.NoError(t, err)
	require.Equal(t, path.Base(dir), strings.SplitN(p, "/", 2)[0])
	require.True(t, strings.HasSuffix(p, "-deed.pdf"))

	b, err := os.ReadFile(s.Resolve(p))
	require.NoError(t, err)
	require.Equal(t, "parcel deed", string(b))
}

func TestDiskStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	_, err := NewDiskStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestDiskStoreConcurrentSameName(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	const n = 32
	paths := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := s.Save(context.Background(), "deed.pdf", strings.NewReader(fmt.Sprintf("copy %d", i)))
			require.NoError(t, err)
			paths[i] = p
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, p := range paths {
		require.False(t, seen[p], "destination name collided: %s", p)
		seen[p] = true
	}
}

func TestDiskStoreRemove(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	p, err := s.Save(context.Background(), "deed.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	require.NoError(t, s.Remove(context.Background(), p))

	_, err = os.Stat(s.Resolve(p))
	require.True(t, os.IsNotExist(err))
}

func TestSanitizeName(t *testing.T) {
	require.Equal(t, "deed.pdf", sanitizeName("../../deed.pdf"))
	require.Equal(t, "deed.pdf", sanitizeName(`C:\docs\deed.pdf`))
	require.Equal(t, "document", sanitizeName(".."))
	require.Equal(t, "a_b.pdf", sanitizeName("a:b.pdf"))
}
