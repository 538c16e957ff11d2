package app

import (
	envfileRepository "github.com/allisson/envseal/internal/envfile/repository"
	envfileUseCase "github.com/allisson/envseal/internal/envfile/usecase"
)

// FileStore returns the dotenv file store configured from ENVSEAL_FILE.
func (c *Container) FileStore() envfileUseCase.FileStore {
	c.fileStoreInit.Do(func() {
		c.fileStore = envfileRepository.NewDotenvStore(c.config.EnvFile)
	})
	return c.fileStore
}

// ProcessEnv returns the process environment collaborator.
func (c *Container) ProcessEnv() envfileUseCase.ProcessEnv {
	c.processEnvInit.Do(func() {
		c.processEnv = envfileRepository.NewOSEnv()
	})
	return c.processEnv
}

// EnvUseCase returns the environment-value pipeline.
func (c *Container) EnvUseCase() envfileUseCase.EnvUseCase {
	c.envUseCaseInit.Do(func() {
		c.envUseCase = envfileUseCase.NewEnvUseCase(c.FileStore(), c.ProcessEnv(), c.Sealer())
	})
	return c.envUseCase
}
