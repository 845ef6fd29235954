package resolver

import (
	"sort"
	"strings"

	"github.com/erraggy/oasresolve/model"
	"github.com/erraggy/oasresolve/oaserrors"
)

// freeze fills document defaults, enforces operationId uniqueness and
// detaches the document from all builder state.
func (p *pass) freeze() {
	doc := p.doc
	if doc.Info == nil {
		doc.Info = &model.Info{}
	}
	if doc.Info.Title == "" {
		doc.Info.Title = p.cfg.DefaultInfoTitle
		p.warn(newDefaultWarning("info.title", doc.Info.Title))
	}
	if doc.Info.Version == "" {
		doc.Info.Version = p.cfg.DefaultInfoVersion
		p.warn(newDefaultWarning("info.version", doc.Info.Version))
	}
	if len(doc.Servers) == 0 {
		doc.Servers = []*model.Server{{URL: p.cfg.DefaultServerURL}}
		p.warn(newDefaultWarning("servers", p.cfg.DefaultServerURL))
	}
	p.uniqueOperationIDs(doc)

	p.stats.Operations = len(doc.Operations())
	p.stats.Paths = len(doc.Paths)
	p.stats.Components = doc.Components.Count()
	p.stats.Tags = len(doc.Tags)
	p.doc = doc.DeepCopy()
	p.log.Info("document resolved",
		"operations", p.stats.Operations,
		"components", p.stats.Components,
		"errors", len(p.errs),
		"unresolved", len(p.unresolved))
}

// uniqueOperationIDs keeps the first operation (by declaration order) of
// every operationId and drops the others.
func (p *pass) uniqueOperationIDs(doc *model.Document) {
	ops := make([]*mergedOp, 0, len(p.ops))
	for _, op := range p.ops {
		if op.built != nil && op.built.OperationID != "" {
			ops = append(ops, op)
		}
	}
	sort.SliceStable(ops, func(i, j int) bool {
		if ops[i].seq != ops[j].seq {
			return ops[i].seq < ops[j].seq
		}
		return ops[i].String() < ops[j].String()
	})

	first := make(map[string]*mergedOp)
	for _, op := range ops {
		id := op.built.OperationID
		kept, dup := first[id]
		if !dup {
			first[id] = op
			continue
		}
		p.fail(&oaserrors.DuplicateOperationIDError{
			OperationID: id,
			Method:      strings.ToUpper(op.method),
			Path:        op.path,
			First:       kept.String(),
			Source:      op.source,
		})
		item := doc.Paths[op.path]
		item.SetOperation(op.method, nil)
		if len(item.Operations()) == 0 {
			delete(doc.Paths, op.path)
		}
		op.built = nil
	}
}
