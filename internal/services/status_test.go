package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tessera/internal/domain"
	portsmocks "tessera/internal/ports/mocks"
)

const testRoot = "/work/repo"

func scanResult(marker string, records ...domain.FileStatusRecord) *domain.ScanResult {
	return &domain.ScanResult{Marker: marker, Records: records, Root: testRoot}
}

func TestStatusService_CacheHitSkipsWalk(t *testing.T) {
	scanner := portsmocks.NewMockStatusScanner(t)
	ignores := portsmocks.NewMockIgnoreProvider(t)

	scanner.EXPECT().RevisionMarker(testRoot).Return("m1", nil)
	scanner.EXPECT().ScanAll(mock.Anything, testRoot).
		Return(scanResult("m1", domain.FileStatusRecord{Path: "a.go", Status: domain.StatusModified}), nil).Once()

	svc := NewStatusService(scanner, ignores, 0)
	first, err := svc.ScanAll(context.Background(), testRoot)
	require.NoError(t, err)
	second, err := svc.ScanAll(context.Background(), testRoot)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestStatusService_MarkerChangeRescans(t *testing.T) {
	scanner := portsmocks.NewMockStatusScanner(t)
	ignores := portsmocks.NewMockIgnoreProvider(t)

	scanner.EXPECT().RevisionMarker(testRoot).Return("m1", nil).Once()
	scanner.EXPECT().ScanAll(mock.Anything, testRoot).Return(scanResult("m1"), nil).Once()
	scanner.EXPECT().RevisionMarker(testRoot).Return("m2", nil).Once()
	scanner.EXPECT().ScanAll(mock.Anything, testRoot).Return(scanResult("m2"), nil).Once()

	svc := NewStatusService(scanner, ignores, 0)
	_, err := svc.ScanAll(context.Background(), testRoot)
	require.NoError(t, err)
	result, err := svc.ScanAll(context.Background(), testRoot)
	require.NoError(t, err)
	assert.Equal(t, "m2", result.Marker)
}

func TestStatusService_ConcurrentScansCoalesce(t *testing.T) {
	scanner := portsmocks.NewMockStatusScanner(t)
	ignores := portsmocks.NewMockIgnoreProvider(t)

	release := make(chan struct{})
	scanner.EXPECT().RevisionMarker(testRoot).Return("m1", nil)
	scanner.EXPECT().ScanAll(mock.Anything, testRoot).
		RunAndReturn(func(ctx context.Context, root string) (*domain.ScanResult, error) {
			<-release
			return scanResult("m1"), nil
		}).Once()

	svc := NewStatusService(scanner, ignores, 0)

	var wg sync.WaitGroup
	results := make([]*domain.ScanResult, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := svc.ScanAll(context.Background(), testRoot)
			assert.NoError(t, err)
			results[i] = r
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "m1", r.Marker)
	}
}

func TestStatusService_NotARepositoryPassesThrough(t *testing.T) {
	scanner := portsmocks.NewMockStatusScanner(t)
	ignores := portsmocks.NewMockIgnoreProvider(t)
	scanner.EXPECT().RevisionMarker(testRoot).Return("", domain.ErrNotAVersionControlRoot)

	svc := NewStatusService(scanner, ignores, 0)
	_, err := svc.ScanAll(context.Background(), testRoot)

	assert.ErrorIs(t, err, domain.ErrNotAVersionControlRoot)
	assert.True(t, StatusUnavailable(err))
}

func TestStatusService_TruncatedScanIsNotCached(t *testing.T) {
	scanner := portsmocks.NewMockStatusScanner(t)
	ignores := portsmocks.NewMockIgnoreProvider(t)

	truncated := scanResult("m1")
	truncated.Truncated = true
	scanner.EXPECT().RevisionMarker(testRoot).Return("m1", nil)
	scanner.EXPECT().ScanAll(mock.Anything, testRoot).Return(truncated, nil).Once()

	svc := NewStatusService(scanner, ignores, 0)
	result, err := svc.ScanAll(context.Background(), testRoot)
	require.NoError(t, err)
	assert.True(t, result.Truncated)

	_, ok := svc.Snapshot(testRoot)
	assert.False(t, ok)
}

func TestStatusService_PathScopedInvalidationMerges(t *testing.T) {
	scanner := portsmocks.NewMockStatusScanner(t)
	ignores := portsmocks.NewMockIgnoreProvider(t)

	scanner.EXPECT().RevisionMarker(testRoot).Return("m1", nil)
	scanner.EXPECT().ScanAll(mock.Anything, testRoot).Return(scanResult("m1",
		domain.FileStatusRecord{IsDir: true, Path: "build", Status: domain.StatusIgnored},
		domain.FileStatusRecord{Path: "a.go", Status: domain.StatusModified},
		domain.FileStatusRecord{Path: "b.go", Status: domain.StatusUntracked},
	), nil).Once()
	scanner.EXPECT().ScanPaths(mock.Anything, testRoot, []string{"a.go", "c.go", "build/x.o"}).
		Return([]domain.FileStatusRecord{
			{Path: "a.go", Status: domain.StatusClean},
			{Path: "c.go", Status: domain.StatusUntracked},
			{Path: "build/x.o", Status: domain.StatusIgnored},
		}, nil).Once()

	svc := NewStatusService(scanner, ignores, 0)
	_, err := svc.ScanAll(context.Background(), testRoot)
	require.NoError(t, err)

	svc.Invalidate(testRoot, []string{testRoot + "/a.go", "c.go", "build/x.o"})

	result, err := svc.ScanAll(context.Background(), testRoot)
	require.NoError(t, err)

	var paths []string
	for _, rec := range result.Records {
		paths = append(paths, rec.Path)
	}
	assert.Equal(t, []string{"b.go", "build", "c.go"}, paths)

	rec, err := svc.ScanOne(context.Background(), testRoot, "build/x.o")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusIgnored, rec.Status)
}

func TestStatusService_LargeChangeSetForcesFullRescan(t *testing.T) {
	scanner := portsmocks.NewMockStatusScanner(t)
	ignores := portsmocks.NewMockIgnoreProvider(t)
	matcher := portsmocks.NewMockIgnoreMatcher(t)

	ignores.EXPECT().ForRoot(testRoot).Return(matcher)
	matcher.EXPECT().Invalidate().Return().Once()

	scanner.EXPECT().RevisionMarker(testRoot).Return("m1", nil)
	scanner.EXPECT().ScanAll(mock.Anything, testRoot).Return(scanResult("m1"), nil).Twice()

	svc := NewStatusService(scanner, ignores, 2)
	_, err := svc.ScanAll(context.Background(), testRoot)
	require.NoError(t, err)

	svc.Invalidate(testRoot, []string{"a", "b", "c"})

	_, err = svc.ScanAll(context.Background(), testRoot)
	require.NoError(t, err)
}

func TestStatusService_EmptyChangeSetForcesFullRescan(t *testing.T) {
	scanner := portsmocks.NewMockStatusScanner(t)
	ignores := portsmocks.NewMockIgnoreProvider(t)
	matcher := portsmocks.NewMockIgnoreMatcher(t)

	ignores.EXPECT().ForRoot(testRoot).Return(matcher)
	matcher.EXPECT().Invalidate().Return().Once()

	scanner.EXPECT().RevisionMarker(testRoot).Return("m1", nil)
	scanner.EXPECT().ScanAll(mock.Anything, testRoot).Return(scanResult("m1"), nil).Twice()

	svc := NewStatusService(scanner, ignores, 0)
	_, err := svc.ScanAll(context.Background(), testRoot)
	require.NoError(t, err)

	svc.Invalidate(testRoot, nil)

	_, err = svc.ScanAll(context.Background(), testRoot)
	require.NoError(t, err)
}

func TestStatusService_RuleFileChangeResetsMatcher(t *testing.T) {
	scanner := portsmocks.NewMockStatusScanner(t)
	ignores := portsmocks.NewMockIgnoreProvider(t)
	matcher := portsmocks.NewMockIgnoreMatcher(t)

	ignores.EXPECT().ForRoot(testRoot).Return(matcher)
	matcher.EXPECT().Invalidate().Return().Times(2)

	svc := NewStatusService(scanner, ignores, 0)
	svc.Invalidate(testRoot, []string{".gitignore", "sub/.gitignore"})
	svc.Invalidate(testRoot, []string{".git/info/exclude"})
}

func TestStatusService_SmallChangeSetKeepsIgnoreRules(t *testing.T) {
	scanner := portsmocks.NewMockStatusScanner(t)
	ignores := portsmocks.NewMockIgnoreProvider(t)

	scanner.EXPECT().RevisionMarker(testRoot).Return("m1", nil)
	scanner.EXPECT().ScanAll(mock.Anything, testRoot).Return(scanResult("m1"), nil).Once()
	scanner.EXPECT().ScanPaths(mock.Anything, testRoot, []string{"a.go"}).
		Return([]domain.FileStatusRecord{{Path: "a.go", Status: domain.StatusModified}}, nil).Once()

	svc := NewStatusService(scanner, ignores, 0)
	_, err := svc.ScanAll(context.Background(), testRoot)
	require.NoError(t, err)

	svc.Invalidate(testRoot, []string{"a.go"})

	ignores.AssertNotCalled(t, "ForRoot", mock.Anything)
}

func TestStatusService_CancelledCallerDoesNotTruncateOthers(t *testing.T) {
	scanner := portsmocks.NewMockStatusScanner(t)
	ignores := portsmocks.NewMockIgnoreProvider(t)

	started := make(chan struct{})
	release := make(chan struct{})
	scanner.EXPECT().RevisionMarker(testRoot).Return("m1", nil)
	scanner.EXPECT().ScanAll(mock.Anything, testRoot).
		RunAndReturn(func(ctx context.Context, root string) (*domain.ScanResult, error) {
			close(started)
			select {
			case <-release:
				return scanResult("m1", domain.FileStatusRecord{Path: "a.go", Status: domain.StatusModified}), nil
			case <-ctx.Done():
				partial := scanResult("m1")
				partial.Truncated = true
				return partial, nil
			}
		}).Once()

	svc := NewStatusService(scanner, ignores, 0)

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderDone := make(chan *domain.ScanResult, 1)
	go func() {
		r, err := svc.ScanAll(leaderCtx, testRoot)
		assert.NoError(t, err)
		leaderDone <- r
	}()
	<-started

	followerDone := make(chan *domain.ScanResult, 1)
	go func() {
		r, err := svc.ScanAll(context.Background(), testRoot)
		assert.NoError(t, err)
		followerDone <- r
	}()
	time.Sleep(50 * time.Millisecond)

	cancelLeader()
	leader := <-leaderDone
	assert.True(t, leader.Truncated)

	close(release)
	follower := <-followerDone
	assert.False(t, follower.Truncated)
	assert.Len(t, follower.Records, 1)

	cached, ok := svc.Snapshot(testRoot)
	require.True(t, ok)
	assert.Same(t, follower, cached)
}

func TestStatusService_HasUncommittedChangesAlwaysAsksScanner(t *testing.T) {
	scanner := portsmocks.NewMockStatusScanner(t)
	ignores := portsmocks.NewMockIgnoreProvider(t)

	scanner.EXPECT().RevisionMarker(testRoot).Return("m1", nil)
	scanner.EXPECT().ScanAll(mock.Anything, testRoot).Return(scanResult("m1"), nil).Once()
	scanner.EXPECT().HasUncommittedChanges(mock.Anything, testRoot).Return(true, nil).Once()

	svc := NewStatusService(scanner, ignores, 0)
	_, err := svc.ScanAll(context.Background(), testRoot)
	require.NoError(t, err)

	dirty, err := svc.HasUncommittedChanges(context.Background(), testRoot)
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestStatusService_IsIgnoredUsesRootMatcher(t *testing.T) {
	scanner := portsmocks.NewMockStatusScanner(t)
	ignores := portsmocks.NewMockIgnoreProvider(t)
	matcher := portsmocks.NewMockIgnoreMatcher(t)

	ignores.EXPECT().ForRoot(testRoot).Return(matcher)
	matcher.EXPECT().IsIgnored("logs/a.log", false).Return(true)

	svc := NewStatusService(scanner, ignores, 0)
	assert.True(t, svc.IsIgnored(testRoot, testRoot+"/logs/a.log", false))
}

func TestStatusService_ScanOneWithoutCacheAsksScanner(t *testing.T) {
	scanner := portsmocks.NewMockStatusScanner(t)
	ignores := portsmocks.NewMockIgnoreProvider(t)

	scanner.EXPECT().RevisionMarker(testRoot).Return("m1", nil)
	scanner.EXPECT().ScanOne(mock.Anything, testRoot, "x.go").
		Return(domain.FileStatusRecord{Path: "x.go", Status: domain.StatusAdded}, nil)

	svc := NewStatusService(scanner, ignores, 0)
	rec, err := svc.ScanOne(context.Background(), testRoot, "x.go")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAdded, rec.Status)
}
