package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"iacscan.dev/pkg/iacscan/internal/adapter"
	adaptermocks "iacscan.dev/pkg/iacscan/internal/adapter/mocks"
	"iacscan.dev/pkg/iacscan/internal/domain"
	domainmocks "iacscan.dev/pkg/iacscan/internal/domain/mocks"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

func TestEngineRunner_Evaluate(t *testing.T) {
	artifacts := m.LocalArtifacts{PolicyEngine: "/cache/engine", RulesBundle: "/cache/bundle.tar.gz"}
	settings := m.OrgSettings{OrgName: "acme"}

	opts := m.Options{}
	opts.SetFlag(m.FlagVarFile, "dev.tfvars")

	resolver := domainmocks.NewMockArtifactResolver(t)
	resolver.EXPECT().Verify(mock.Anything, m.ArtifactPolicyEngine, artifacts.PolicyEngine).Return(nil).Once()
	resolver.EXPECT().Verify(mock.Anything, m.ArtifactRulesBundle, artifacts.RulesBundle).Return(nil).Once()

	want := m.EngineOutput{Results: []m.EngineResult{{ProjectName: "infra"}}}

	engine := adaptermocks.NewMockEngineAdapter(t)
	engine.EXPECT().Invoke(mock.Anything, adapter.EngineRequest{
		EnginePath:  artifacts.PolicyEngine,
		BundlePath:  artifacts.RulesBundle,
		TargetPath:  "infra",
		OrgSettings: settings,
		Args:        opts.EngineArgs(),
	}).Return(want, nil).Once()

	got, err := domain.NewEngineRunner(engine, resolver, artifacts).Evaluate(context.Background(), "infra", opts, settings)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEngineRunner_MissingArtifact(t *testing.T) {
	artifacts := m.LocalArtifacts{PolicyEngine: "/cache/engine", RulesBundle: "/cache/bundle.tar.gz"}

	resolver := domainmocks.NewMockArtifactResolver(t)
	resolver.EXPECT().Verify(mock.Anything, m.ArtifactPolicyEngine, artifacts.PolicyEngine).Return(nil).Once()
	resolver.EXPECT().Verify(mock.Anything, m.ArtifactRulesBundle, artifacts.RulesBundle).Return(domain.ErrArtifactNotFound).Once()

	engine := adaptermocks.NewMockEngineAdapter(t)

	_, err := domain.NewEngineRunner(engine, resolver, artifacts).Evaluate(context.Background(), "infra", m.Options{}, m.OrgSettings{})
	require.ErrorIs(t, err, domain.ErrArtifactNotFound)
	engine.AssertNotCalled(t, "Invoke", mock.Anything, mock.Anything)
}
