package assembler

// #region imports
import (
	"context"
	"log"
	"sync"

	"github.com/zhang-liz/buildstory/internal/content"
	"github.com/zhang-liz/buildstory/internal/strategist"
)

// #endregion imports

// #region interfaces

// Chooser resolves one slot's candidate list to a winning section.
// *strategist.Strategist satisfies it.
type Chooser interface {
	ChooseOptimalVariant(ctx context.Context, scope, slot string, candidates []content.Section) (strategist.Choice, error)
}

// DocumentSource supplies previously saved document variants for candidate
// gathering. *store.Store satisfies it.
type DocumentSource interface {
	ListDocumentVariants(ctx context.Context, scope, segment string) ([]content.Document, error)
}

// #endregion interfaces

// #region result

// Result is an assembled document plus the per-slot variant identifiers
// the client reports conversions against. Slots that fell back to their
// base section have no entry in VariantIDs.
type Result struct {
	Document   content.Document
	VariantIDs map[string]string
	Choices    map[string]strategist.Choice
}

// #endregion result

// #region assembler

// Assembler resolves every slot of a base document to its
// currently-winning variant. Slots are independent and resolved
// concurrently; any per-slot failure degrades that slot to its base
// section so a page always renders complete.
type Assembler struct {
	chooser Chooser
	docs    DocumentSource
}

// NewAssembler creates an assembler over the given chooser and document
// source.
func NewAssembler(chooser Chooser, docs DocumentSource) *Assembler {
	return &Assembler{chooser: chooser, docs: docs}
}

// #endregion assembler

// #region assemble

// Assemble gathers candidate variants for each slot of base, lets the
// chooser pick per slot, and returns the document with exactly one section
// per original slot in the original order.
func (a *Assembler) Assemble(ctx context.Context, scope string, base content.Document) (Result, error) {
	variants, err := a.docs.ListDocumentVariants(ctx, scope, base.Segment)
	if err != nil {
		// Candidate gathering is best-effort; the base document alone
		// still renders.
		log.Printf("[ASSEMBLE] variant lookup failed, serving base only: scope=%s segment=%s err=%v",
			scope, base.Segment, err)
		variants = nil
	}

	type slotResult struct {
		choice strategist.Choice
		ok     bool
	}
	results := make([]slotResult, len(base.Sections))

	var wg sync.WaitGroup
	for i, baseSec := range base.Sections {
		wg.Add(1)
		go func(i int, baseSec content.Section) {
			defer wg.Done()
			candidates := gatherCandidates(baseSec, variants)
			choice, err := a.chooser.ChooseOptimalVariant(ctx, scope, baseSec.Slot, candidates)
			if err != nil {
				log.Printf("[ASSEMBLE] slot fallback: scope=%s slot=%s err=%v", scope, baseSec.Slot, err)
				return
			}
			results[i] = slotResult{choice: choice, ok: true}
		}(i, baseSec)
	}
	wg.Wait()

	out := Result{
		Document: content.Document{
			ID:       base.ID,
			Segment:  base.Segment,
			Sections: make([]content.Section, len(base.Sections)),
		},
		VariantIDs: make(map[string]string),
		Choices:    make(map[string]strategist.Choice),
	}
	for i, baseSec := range base.Sections {
		if !results[i].ok {
			out.Document.Sections[i] = baseSec
			continue
		}
		choice := results[i].choice
		out.Document.Sections[i] = choice.Section
		out.VariantIDs[baseSec.Slot] = choice.VariantID
		out.Choices[baseSec.Slot] = choice
	}
	return out, nil
}

// #endregion assemble

// #region candidates

// gatherCandidates merges the base section with every stored variant for
// the same slot, deduplicated by variant identifier with first occurrence
// winning, so the bandit never sees two identical arms. Candidates that
// fail to hash are dropped here; the base section stays in regardless and
// the chooser surfaces its error if it too is malformed.
func gatherCandidates(baseSec content.Section, variants []content.Document) []content.Section {
	candidates := []content.Section{baseSec}
	seen := map[string]bool{}

	if id, err := content.Hash(baseSec); err == nil {
		seen[id] = true
	}

	for _, doc := range variants {
		sec, ok := doc.SectionFor(baseSec.Slot)
		if !ok {
			continue
		}
		id, err := content.Hash(sec)
		if err != nil {
			log.Printf("[ASSEMBLE] dropping malformed stored variant: slot=%s err=%v", baseSec.Slot, err)
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		candidates = append(candidates, sec)
	}
	return candidates
}

// #endregion candidates
