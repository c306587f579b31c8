package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/models"
	"github.com/gufrankhursheed/job-platform-frontend/internal/client/store"
	"github.com/gufrankhursheed/job-platform-frontend/internal/logging"
)

func newAppService(f *fakeClient) (ApplicationService, *store.Store) {
	st := store.New()
	return NewApplicationService(f, st, logging.NewDefault()), st
}

func TestApply_RecordsOnlyAfterServerConfirms(t *testing.T) {
	f := &fakeClient{applyErr: errors.New("closed job")}
	svc, st := newAppService(f)

	err := svc.Apply(context.Background(), "7")
	require.Error(t, err)
	require.False(t, st.HasApplied("7"))
	require.Equal(t, 0, st.ApplicationsCount())

	f.applyErr = nil
	f.application = models.Application{ID: "a1", JobID: "7"}
	require.NoError(t, svc.Apply(context.Background(), "7"))
	require.True(t, st.HasApplied("7"))
	require.Equal(t, 1, st.ApplicationsCount())
}

func TestApply_DoubleSubmitIsNoOp(t *testing.T) {
	f := &fakeClient{application: models.Application{ID: "a1", JobID: "7"}}
	svc, st := newAppService(f)

	require.NoError(t, svc.Apply(context.Background(), "7"))
	f.lastApplyJobID = ""

	require.NoError(t, svc.Apply(context.Background(), "7"))
	require.Empty(t, f.lastApplyJobID, "second apply must not reach the network")
	require.Equal(t, 1, st.ApplicationsCount())
}

func TestLoadAppliedJobs_MapsEmbeddedJobIDs(t *testing.T) {
	f := &fakeClient{
		candidateApps: []models.Application{
			{ID: "a1", Job: &models.Job{ID: "j1", Status: models.JobOpen}},
			{ID: "a2", JobID: "j2"},
			{ID: "a3"}, // no job reference at all
		},
		candidatePagination: models.Pagination{TotalItems: 8},
	}
	svc, st := newAppService(f)

	require.NoError(t, svc.LoadAppliedJobs(context.Background(), "u1"))
	require.ElementsMatch(t, []string{"j1", "j2"}, st.AppliedJobIDs())
	require.Equal(t, 8, st.ApplicationsCount())
}

func TestLoadAppliedJobs_FailureKeepsPriorState(t *testing.T) {
	f := &fakeClient{candidateAppsErr: errors.New("down")}
	svc, st := newAppService(f)
	st.AddAppliedJob("7")

	err := svc.LoadAppliedJobs(context.Background(), "u1")
	require.Error(t, err)
	require.True(t, st.HasApplied("7"))
	require.Equal(t, 1, st.ApplicationsCount())
}

func TestSetStatus_ForwardsToClient(t *testing.T) {
	f := &fakeClient{}
	svc, _ := newAppService(f)

	require.NoError(t, svc.SetStatus(context.Background(), "a1", "shortlisted"))
	require.Equal(t, "a1", f.lastAppStatusID)
	require.Equal(t, "shortlisted", f.lastAppStatus)
}

func TestLoadTotalApplicants(t *testing.T) {
	f := &fakeClient{totalApplicants: 14}
	svc, st := newAppService(f)

	require.NoError(t, svc.LoadTotalApplicants(context.Background()))
	require.Equal(t, 14, st.TotalApplicants())
}
