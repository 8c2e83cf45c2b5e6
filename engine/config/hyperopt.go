package config

import (
	"encoding/json"
	"math"

	"github.com/tidwall/gjson"

	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/engine/schema/trainer"
)

// unboundedEpochs is the sentinel meaning "no epoch limit": a hyperopt
// scheduler's time budget governs trial length instead.
const unboundedEpochs = math.MaxInt32

// reconcileHyperopt aligns trainer stopping criteria with a hyperopt
// scheduler. The scheduler owns trial lifecycle, so trainer early stopping is
// disabled, and the epochs/max_t pair must agree on a single stopping rule.
func (c *ModelConfig) reconcileHyperopt() error {
	if len(c.Hyperopt) == 0 {
		return nil
	}
	executor, ok := c.Hyperopt["executor"].(map[string]any)
	if !ok {
		executor = map[string]any{}
		c.Hyperopt["executor"] = executor
	}
	if _, present := executor[core.KeyType]; !present {
		executor[core.KeyType] = "ray"
	}
	raw, err := json.Marshal(c.Hyperopt)
	if err != nil {
		return core.NewErrorf(core.ErrCodeConversion,
			"failed to serialize hyperopt section: %s", err.Error())
	}
	scheduler := gjson.GetBytes(raw, "executor.scheduler")
	if !scheduler.Exists() {
		return nil
	}
	if c.Trainer.GetEarlyStop() != -1 {
		c.logger.Warn(
			"A hyperopt scheduler owns trial lifecycle: disabling trainer early stopping",
			"early_stop", -1)
		c.Trainer.SetEarlyStop(-1)
	}
	ecd, ok := c.Trainer.(*trainer.ECDTrainer)
	if !ok {
		return nil
	}
	maxT := scheduler.Get("max_t")
	timeAttr := scheduler.Get("time_attr")
	switch {
	case maxT.Exists():
		if timeAttr.String() == "time_total_s" {
			if ecd.Epochs == nil {
				epochs := unboundedEpochs
				ecd.Epochs = &epochs
			}
			return nil
		}
		target := int(maxT.Int())
		if ecd.Epochs == nil {
			ecd.Epochs = &target
			return nil
		}
		if *ecd.Epochs != target {
			return core.NewError(core.ErrCodeSemantic,
				"Cannot set trainer `epochs` when using a hyperopt scheduler with `max_t`. "+
					"Unset one of these values.")
		}
	case ecd.Epochs != nil:
		// Back-fill max_t so the scheduler knows the trial budget.
		if schedulerDict, ok := executor["scheduler"].(map[string]any); ok {
			schedulerDict["max_t"] = *ecd.Epochs
		}
	}
	return nil
}
