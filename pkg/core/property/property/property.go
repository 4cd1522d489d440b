package property

import (
	// 外部依赖
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	haxmap "github.com/alphadose/haxmap"
	ants "github.com/panjf2000/ants/v2"
	attribute "go.opentelemetry.io/otel/attribute"
	metric "go.opentelemetry.io/otel/metric"
	oteltrace "go.opentelemetry.io/otel/trace"

	// 内部引用
	config "github.com/nqn-dd/NovoMD/internal/config"
	code "github.com/nqn-dd/NovoMD/pkg/common/code"
	molecule "github.com/nqn-dd/NovoMD/pkg/core/molecule"
	core "github.com/nqn-dd/NovoMD/pkg/core/property"
	logger "github.com/nqn-dd/NovoMD/pkg/middleware/logger"
	redis "github.com/nqn-dd/NovoMD/pkg/middleware/redis"
	trace "github.com/nqn-dd/NovoMD/pkg/middleware/trace"
	repo "github.com/nqn-dd/NovoMD/pkg/repo"
	repoPubchem "github.com/nqn-dd/NovoMD/pkg/repo/pubchem"
	utils "github.com/nqn-dd/NovoMD/pkg/utils"
)

const compoundCacheTTL = 24 * time.Hour

type propertyImpl struct {
	registry *core.Registry
	pubchem  repo.PubChemRepo
	pool     *ants.Pool
	// parseCache maps format+notation to the parsed structure. Parsed
	// molecules are never mutated after Prepare, so sharing across
	// requests is safe.
	parseCache *haxmap.Map[string, *molecule.Molecule]
	cacheLimit int
	timeout    time.Duration

	tracer    oteltrace.Tracer
	calcCount metric.Int64Counter
}

var (
	svc  *propertyImpl
	once sync.Once
)

func New() core.Service {
	once.Do(func() {
		conf := config.Global().Compute
		svc = &propertyImpl{
			registry:   defaultRegistry(),
			pubchem:    repoPubchem.NewPubChemRepo(),
			parseCache: haxmap.New[string, *molecule.Molecule](),
			cacheLimit: conf.ParseCacheSize,
			timeout:    time.Duration(conf.RequestTimeout) * time.Second,
		}
		svc.pool, _ = ants.NewPool(conf.PoolSize)
		svc.tracer = trace.Tracer("core.property")
		svc.calcCount, _ = trace.Meter("core.property").Int64Counter(
			"novomd.calculations",
			metric.WithDescription("property calculations by outcome"),
		)
	})
	return svc
}

func (p *propertyImpl) Calculate(ctx context.Context, req *core.CalcReq) (*core.CalcResp, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	mol, format, err := p.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	results := make([]*core.Result, len(req.Properties))
	var wg sync.WaitGroup
	for i, name := range req.Properties {
		i, name := i, name
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = p.computeOne(ctx, name, mol)
		}
		if err := p.pool.Submit(task); err != nil {
			// Pool saturated: compute inline rather than drop the request.
			task()
		}
	}
	wg.Wait()

	return &core.CalcResp{
		Format:  string(format),
		NAtoms:  mol.NAtoms(),
		Results: results,
	}, nil
}

func (p *propertyImpl) CalculateStream(ctx context.Context, req *core.CalcReq, emit func(*core.Result)) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	mol, _, err := p.resolve(ctx, req)
	if err != nil {
		return err
	}

	for _, name := range req.Properties {
		if err := ctx.Err(); err != nil {
			return err
		}
		emit(p.computeOne(ctx, name, mol))
	}
	return nil
}

func (p *propertyImpl) Capabilities(_ context.Context) *core.CapabilitiesResp {
	resp := &core.CapabilitiesResp{}
	for _, name := range p.registry.Implemented() {
		c, _ := p.registry.Lookup(name)
		resp.Implemented = append(resp.Implemented, core.CapabilityInfo{
			Name:   c.Name(),
			Units:  c.Units(),
			Method: c.Method(),
			Needs:  c.Needs().String(),
		})
	}
	for _, name := range p.registry.PendingNames() {
		pd, _ := p.registry.Guidance(name)
		resp.Pending = append(resp.Pending, core.PendingInfo{
			Name:     pd.Name,
			Guidance: pd.Guidance,
		})
	}
	return resp
}

func (p *propertyImpl) Convert(ctx context.Context, req *core.ConvertReq) (*core.ConvertResp, error) {
	mol, _, err := p.parse(ctx, req.Structure, molecule.Format(req.Format))
	if err != nil {
		return nil, err
	}

	var content string
	switch req.To {
	case "xyz":
		if !mol.HasCoordinates() {
			return nil, code.NeedCoordinatesErr.WithMsg("cannot emit XYZ without 3D coordinates")
		}
		content, err = molecule.WriteXYZ(mol, "converted by novomd")
	case "pdb":
		if !mol.HasCoordinates() {
			return nil, code.NeedCoordinatesErr.WithMsg("cannot emit PDB without 3D coordinates")
		}
		content, err = molecule.WritePDB(mol)
	case "summary":
		content = p.summarize(mol)
	default:
		return nil, code.ParamErr.WithMsgf("unknown target format %q", req.To)
	}
	if err != nil {
		return nil, code.ComputeErr.WithErr(err)
	}
	return &core.ConvertResp{To: req.To, Content: content}, nil
}

func (p *propertyImpl) summarize(mol *molecule.Molecule) string {
	var b strings.Builder
	b.WriteString("formula: " + mol.Formula() + "\n")
	b.WriteString("atoms: " + strconv.Itoa(mol.NAtoms()) + "\n")
	b.WriteString("heavy atoms: " + strconv.Itoa(mol.HeavyAtomCount()) + "\n")
	b.WriteString("bonds: " + strconv.Itoa(len(mol.Bonds)) + "\n")
	b.WriteString("rings: " + strconv.Itoa(mol.RingCount()) + "\n")
	if mol.HasCoordinates() {
		b.WriteString("coordinates: yes\n")
	} else {
		b.WriteString("coordinates: no\n")
	}
	return b.String()
}

// resolve turns a request into a parsed molecule: either the inline
// structure or a PubChem compound lookup, never both.
func (p *propertyImpl) resolve(ctx context.Context, req *core.CalcReq) (*molecule.Molecule, molecule.Format, error) {
	switch {
	case req.Structure != "" && req.Compound != "":
		return nil, "", code.ParamErr.WithMsg("structure and compound are mutually exclusive")
	case req.Structure != "":
		return p.parse(ctx, req.Structure, molecule.Format(req.Format))
	case req.Compound != "":
		smiles, err := p.resolveCompound(ctx, req.Compound)
		if err != nil {
			return nil, "", err
		}
		return p.parse(ctx, smiles, molecule.FormatSMILES)
	default:
		return nil, "", code.ParamErr.WithMsg("either structure or compound is required")
	}
}

// resolveCompound maps a compound name to SMILES, caching hits in redis
// so repeated lookups skip the upstream round trip.
func (p *propertyImpl) resolveCompound(ctx context.Context, name string) (string, error) {
	key := "novomd:compound:" + strings.ToLower(strings.TrimSpace(name))
	if rc := redis.GetClient(); rc != nil {
		if smiles, err := rc.Get(ctx, key).Result(); err == nil && smiles != "" {
			return smiles, nil
		}
	}

	info, err := p.pubchem.GetCompoundByName(ctx, name)
	if err != nil {
		return "", err
	}

	if rc := redis.GetClient(); rc != nil {
		if err := rc.Set(ctx, key, info.SMILES, compoundCacheTTL).Err(); err != nil {
			logger.Warnf(ctx, "cache compound %q fail: %+v", name, err)
		}
	}
	return info.SMILES, nil
}

func (p *propertyImpl) parse(ctx context.Context, structure string, format molecule.Format) (*molecule.Molecule, molecule.Format, error) {
	key := string(format) + "\x00" + structure
	if mol, ok := p.parseCache.Get(key); ok {
		return mol, mol.Source, nil
	}

	mol, err := molecule.Parse([]byte(structure), format)
	if err != nil {
		return nil, "", code.InvalidInputErr.WithErr(err)
	}

	if int(p.parseCache.Len()) < p.cacheLimit {
		p.parseCache.Set(key, mol)
	}
	logger.Debugf(ctx, "parsed %s structure: %d atoms, %d bonds", mol.Source, mol.NAtoms(), len(mol.Bonds))
	return mol, mol.Source, nil
}

// computeOne runs the integrity gate for a single property: implemented
// and satisfiable yields a value, recognized-but-unimplemented yields a
// refusal, everything else an input error. There is no fourth outcome.
func (p *propertyImpl) computeOne(ctx context.Context, name string, mol *molecule.Molecule) *core.Result {
	ctx, span := p.tracer.Start(ctx, "property.compute",
		oteltrace.WithAttributes(attribute.String("property", name)))
	defer span.End()

	res := p.compute(ctx, name, mol)

	outcome := "computed"
	if res.Error != nil {
		outcome = "refused"
		if res.Error.Code == code.ComputeErr.Code {
			outcome = "failed"
		}
	}
	if p.calcCount != nil {
		p.calcCount.Add(ctx, 1, metric.WithAttributes(
			attribute.String("property", name),
			attribute.String("outcome", outcome),
		))
	}
	return res
}

func (p *propertyImpl) compute(ctx context.Context, name string, mol *molecule.Molecule) *core.Result {
	calc, ok := p.registry.Lookup(name)
	if !ok {
		if pd, recognized := p.registry.Guidance(name); recognized {
			return errResult(name, code.UnsupportedCalcErr.WithMsg(pd.Guidance))
		}
		return errResult(name, code.UnknownPropertyErr.WithMsgf("unknown property %q", name))
	}

	if err := checkNeeds(calc, mol); err != nil {
		return errResult(name, err)
	}

	var val *core.Value
	var calcErr error
	if err := utils.SafelyRun(func() {
		val, calcErr = calc.Compute(ctx, mol)
	}); err != nil {
		logger.Errorf(ctx, "calculator %s panic: %+v", name, err)
		return errResult(name, code.ComputeErr.WithMsgf("calculation %s aborted", name))
	}
	if calcErr != nil {
		var ec *code.ErrCode
		if errors.As(calcErr, &ec) {
			return errResult(name, ec)
		}
		return errResult(name, code.ComputeErr.WithMsgf("%s: %v", name, calcErr))
	}

	v := val.Value
	return &core.Result{
		Property:   name,
		Value:      &v,
		Components: val.Components,
		Units:      calc.Units(),
		Method:     calc.Method(),
	}
}

// checkNeeds enforces the representation contract. Graph calculators
// demand SMILES because only notation input carries hydrogen counts and
// formal charges; perceived bonds from bare coordinates do not.
func checkNeeds(calc core.Calculator, mol *molecule.Molecule) *code.ErrCode {
	switch calc.Needs() {
	case core.NeedsCoordinates:
		if !mol.HasCoordinates() {
			return code.NeedCoordinatesErr.WithMsgf("%s requires %s", calc.Name(), calc.Needs())
		}
	case core.NeedsGraph:
		if mol.Source != molecule.FormatSMILES {
			return code.NeedConnectivityErr.WithMsgf("%s requires %s", calc.Name(), calc.Needs())
		}
	}
	return nil
}

func errResult(name string, err *code.ErrCode) *core.Result {
	return &core.Result{
		Property: name,
		Error:    &core.ResultError{Code: err.Code, Msg: err.Msg},
	}
}
