// Package report renders a session summary from the store. It is a strictly
// read-only consumer: it lists the scope's breadcrumbs, interactions,
// snapshots, and events, writes a Markdown summary, and exports each record
// kind as JSONL for downstream tooling.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dukaforge/snippets/pkg/types"
)

// Generator renders reports for one scope of a store.
type Generator struct {
	storage   types.Storage
	scope     string
	outFolder string
}

// NewGenerator creates a report generator. An empty reporting folder
// defaults to the current directory.
func NewGenerator(config types.ReportingConfig, storage types.Storage, scope string) *Generator {
	outFolder := config.OutFolder
	if outFolder == "" {
		outFolder = "."
	}
	return &Generator{storage: storage, scope: scope, outFolder: outFolder}
}

// Generate reads back the scope's records, writes the Markdown summary and
// the four JSONL exports, and returns the summary file path. An empty tag
// defaults to "report".
func (g *Generator) Generate(tag string) (string, error) {
	if tag == "" {
		tag = "report"
	}
	if err := os.MkdirAll(g.outFolder, 0o755); err != nil {
		return "", fmt.Errorf("creating report folder: %w", err)
	}

	breadcrumbs, err := g.storage.ListBreadcrumbs(g.scope)
	if err != nil {
		return "", err
	}
	interactions, err := g.storage.ListInteractions(g.scope)
	if err != nil {
		return "", err
	}
	snapshots, err := g.storage.ListAccountSnapshots(g.scope)
	if err != nil {
		return "", err
	}
	events, err := g.storage.ListEvents(g.scope)
	if err != nil {
		return "", err
	}

	summary := RenderSummary(g.scope, tag, breadcrumbs, interactions, snapshots, events)
	summaryFile := filepath.Join(g.outFolder, fmt.Sprintf("%s-%s.report.md", g.scope, tag))
	if err := os.WriteFile(summaryFile, []byte(summary), 0o644); err != nil {
		return "", fmt.Errorf("writing summary: %w", err)
	}

	if err := exportJSONL(g, tag, "breadcrumbs", breadcrumbJSONLRecords(breadcrumbs)); err != nil {
		return "", err
	}
	if err := exportJSONL(g, tag, "interactions", interactionJSONLRecords(interactions)); err != nil {
		return "", err
	}
	if err := exportJSONL(g, tag, "account_snapshots", snapshotJSONLRecords(snapshots)); err != nil {
		return "", err
	}
	if err := exportJSONL(g, tag, "events", eventJSONLRecords(events)); err != nil {
		return "", err
	}

	return summaryFile, nil
}

func exportJSONL[T any](g *Generator, tag, kind string, records []T) error {
	lines, err := marshalRecords(records)
	if err != nil {
		return err
	}
	path := filepath.Join(g.outFolder, fmt.Sprintf("%s-%s.%s.jsonl", g.scope, tag, kind))
	return writeJSONL(path, lines)
}

// RenderSummary produces the Markdown summary. The output is deterministic
// for a given store state: maps serialize with sorted keys and records keep
// their store order.
func RenderSummary(
	scope, tag string,
	breadcrumbs []*types.BreadcrumbRecord,
	interactions []*types.InteractionRecord,
	snapshots []*types.AccountSnapshotRecord,
	events []*types.EventRecord,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Session report: %s\n\n", scope)
	fmt.Fprintf(&b, "Tag: %s\n\n", tag)

	fmt.Fprintf(&b, "## Breadcrumbs (%d)\n\n", len(breadcrumbs))
	if len(breadcrumbs) > 0 {
		b.WriteString("| Name | Type | Payload |\n| --- | --- | --- |\n")
		for _, record := range breadcrumbs {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", record.Name, record.Type, jsonCell(record.Payload))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Interactions (%d)\n\n", len(interactions))
	if len(interactions) > 0 {
		b.WriteString("| ID | Action | User | Contract | Transaction | Output |\n| --- | --- | --- | --- | --- | --- |\n")
		for _, record := range interactions {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
				record.ID, record.Action, record.UserAddress, record.ContractAddress,
				record.TransactionHash, jsonCell(record.Output))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Account snapshots (%d)\n\n", len(snapshots))
	if len(snapshots) > 0 {
		b.WriteString("| Address | Nonce | Balance | Fungible | Non-fungible | Before | After |\n| --- | --- | --- | --- | --- | --- | --- |\n")
		for _, record := range snapshots {
			fmt.Fprintf(&b, "| %s | %d | %s | %d | %d | %s | %s |\n",
				record.Address, record.Nonce, record.Balance,
				len(record.FungibleTokens), len(record.NonFungibleTokens),
				idCell(record.TakenBeforeInteraction), idCell(record.TakenAfterInteraction))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Events (%d)\n\n", len(events))
	if len(events) > 0 {
		b.WriteString("| Kind | Summary | Interaction |\n| --- | --- | --- |\n")
		for _, record := range events {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", record.Kind, record.Summary, idCell(record.Interaction))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// jsonCell renders a payload as compact JSON, or a dash when absent.
func jsonCell(payload any) string {
	if payload == nil {
		return "-"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "-"
	}
	return string(data)
}

// idCell renders an optional interaction reference.
func idCell(id *int64) string {
	if id == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *id)
}
