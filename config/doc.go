// Package config loads solver settings with viper and turns them into
// extension options and a zerolog logger.
//
// Keys (environment overrides use the KEXT_ prefix, dots become
// underscores: KEXT_SOLVER_K=3):
//
//	solver.algorithm               exact | approx        (exact)
//	solver.k                       required mappings     (1)
//	solver.trials_multiplier       approx T factor       (1.0)
//	solver.seed                    approx seed           (1)
//	solver.max_retries             approx re-rolls       (3)
//	performance.num_workers        0 = GOMAXPROCS        (0)
//	performance.materialize_limit  exact pool cap        (1<<20)
//	performance.max_subsets        exact subset cap, 0 = none (0)
//	logging.level                  zerolog level         (info)
//	logging.enable_progress        log progress          (false)
//	logging.progress_interval_ms   progress period       (250)
package config
