package main

import (
	"context"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/ports"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/records"
)

// deadlineInspector gives each call its own deadline, so a long-lived
// server bounds every tool call rather than the whole session.
type deadlineInspector struct {
	next       ports.Inspector
	newContext func(context.Context) (context.Context, context.CancelFunc)
}

func (d *deadlineInspector) ListSDKs(ctx context.Context) ([]records.SDK, error) {
	ctx, cancel := d.newContext(ctx)
	defer cancel()

	return d.next.ListSDKs(ctx)
}

func (d *deadlineInspector) ListRuntimes(ctx context.Context) ([]records.Runtime, error) {
	ctx, cancel := d.newContext(ctx)
	defer cancel()

	return d.next.ListRuntimes(ctx)
}

func (d *deadlineInspector) RuntimesByName(ctx context.Context, name string) ([]records.Runtime, error) {
	ctx, cancel := d.newContext(ctx)
	defer cancel()

	return d.next.RuntimesByName(ctx, name)
}

func (d *deadlineInspector) EnvironmentInfo(ctx context.Context) (records.EnvironmentInfo, error) {
	ctx, cancel := d.newContext(ctx)
	defer cancel()

	return d.next.EnvironmentInfo(ctx)
}

func (d *deadlineInspector) EffectiveSDKVersion(ctx context.Context, dir string) (string, error) {
	ctx, cancel := d.newContext(ctx)
	defer cancel()

	return d.next.EffectiveSDKVersion(ctx, dir)
}

func (d *deadlineInspector) IsSDKInstalled(ctx context.Context, version string) (bool, error) {
	ctx, cancel := d.newContext(ctx)
	defer cancel()

	return d.next.IsSDKInstalled(ctx, version)
}

func (d *deadlineInspector) LatestSDK(ctx context.Context) (records.SDK, bool, error) {
	ctx, cancel := d.newContext(ctx)
	defer cancel()

	return d.next.LatestSDK(ctx)
}

func (d *deadlineInspector) LatestSDKBySemver(ctx context.Context) (records.SDK, bool, error) {
	ctx, cancel := d.newContext(ctx)
	defer cancel()

	return d.next.LatestSDKBySemver(ctx)
}

var _ ports.Inspector = (*deadlineInspector)(nil)
