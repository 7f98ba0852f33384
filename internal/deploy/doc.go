// Package deploy orchestrates deploying a Team to one or more targets.
//
// A [Deployer] owns a provider registry, the filesystem every provider
// writes through and the home-directory lookup. [Deployer.DeployToMultiple]
// validates first, then deploys each distinct target in the order given;
// one target failing never stops the others. With Options.Backup each
// target's existing files are snapshotted before anything is written and
// the backup id is reported on its Result.
package deploy
