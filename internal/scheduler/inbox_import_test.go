package scheduler

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/acis05/Pbiacis/internal/domain"
	"github.com/acis05/Pbiacis/internal/usecases/importing"
	"github.com/acis05/Pbiacis/internal/usecases/importing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var runAt = time.Date(2026, 1, 5, 6, 0, 0, 0, time.UTC)

func newTestInboxService(t *testing.T, importer importing.Importer, clearBefore bool) (*InboxImportService, string) {
	t.Helper()

	dir := t.TempDir()
	return &InboxImportService{
		importer: importer,
		config: InboxImportConfig{
			CronSchedule: "*/15 * * * *",
			Dir:          dir,
			Tenant:       "acis",
			ClearBefore:  clearBefore,
		},
		now: func() time.Time { return runAt },
	}, dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInboxImportService_RunInboxImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	importer := mocks.NewMockImporter(ctrl)
	service, dir := newTestInboxService(t, importer, true)

	writeFile(t, dir, "a_penjualan.xls", "<table>a</table>")
	writeFile(t, dir, "b_penjualan.html", "<table>b</table>")
	writeFile(t, dir, "leia-me.txt", "ignorado")

	gomock.InOrder(
		importer.EXPECT().
			Import(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req importing.ImportRequest) (*domain.ImportResult, error) {
				assert.Equal(t, "a_penjualan.xls", req.FileName)
				assert.Equal(t, "acis", req.Tenant)
				assert.True(t, req.ClearBefore)

				content, err := io.ReadAll(req.Content)
				require.NoError(t, err)
				assert.Equal(t, "<table>a</table>", string(content))

				return &domain.ImportResult{Imported: 3}, nil
			}),
		importer.EXPECT().
			Import(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req importing.ImportRequest) (*domain.ImportResult, error) {
				assert.Equal(t, "b_penjualan.html", req.FileName)
				assert.False(t, req.ClearBefore, "somente o primeiro arquivo substitui as vendas")
				return &domain.ImportResult{Imported: 2}, nil
			}),
	)

	summary, err := service.RunInboxImport(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"a_penjualan.xls", "b_penjualan.html"}, summary.Processed)
	assert.Empty(t, summary.Failed)
	assert.Equal(t, 5, summary.Imported)

	assert.FileExists(t, filepath.Join(dir, "processed", "20260105-060000_a_penjualan.xls"))
	assert.FileExists(t, filepath.Join(dir, "processed", "20260105-060000_b_penjualan.html"))
	assert.NoFileExists(t, filepath.Join(dir, "a_penjualan.xls"))
	assert.FileExists(t, filepath.Join(dir, "leia-me.txt"))
}

func TestInboxImportService_FailedFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	importer := mocks.NewMockImporter(ctrl)
	service, dir := newTestInboxService(t, importer, true)

	writeFile(t, dir, "a_vazio.htm", "")
	writeFile(t, dir, "b_penjualan.xls", "<table></table>")

	gomock.InOrder(
		importer.EXPECT().
			Import(gomock.Any(), gomock.Any()).
			Return(nil, importing.ErrNoRecords),
		importer.EXPECT().
			Import(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req importing.ImportRequest) (*domain.ImportResult, error) {
				assert.True(t, req.ClearBefore, "falha anterior não conta como substituição")
				return &domain.ImportResult{Imported: 1}, nil
			}),
	)

	summary, err := service.RunInboxImport(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"a_vazio.htm"}, summary.Failed)
	assert.Equal(t, []string{"b_penjualan.xls"}, summary.Processed)
	assert.FileExists(t, filepath.Join(dir, "failed", "20260105-060000_a_vazio.htm"))
}

func TestInboxImportService_MissingDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, dir := newTestInboxService(t, mocks.NewMockImporter(ctrl), false)
	service.config.Dir = filepath.Join(dir, "inexistente")

	summary, err := service.RunInboxImport(context.Background())

	require.NoError(t, err)
	assert.Empty(t, summary.Processed)
}

func TestInboxImportService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	importer := mocks.NewMockImporter(ctrl)
	service, dir := newTestInboxService(t, importer, false)

	writeFile(t, dir, "penjualan.xls", "<table></table>")
	importer.EXPECT().Import(gomock.Any(), gomock.Any()).Return(nil, errors.New("falha"))

	_, err := service.RunInboxImport(context.Background())
	require.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "*/15 * * * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, runAt, status["last_sync_completed_at"])

	lastRun, ok := status["last_run"].(*InboxRunSummary)
	require.True(t, ok)
	assert.Equal(t, []string{"penjualan.xls"}, lastRun.Failed)
}

func TestInboxImportService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, _ := newTestInboxService(t, mocks.NewMockImporter(ctrl), false)

	assert.NoError(t, service.Start(context.Background()))
}
