package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/webaddicted/pkg/utils"
)

// StorageAppName gdata 存储使用的应用名
const StorageAppName = "webaddicted"

// OpenStorage 打开跨平台键值存储（桌面为用户数据目录，浏览器为 localStorage）
func OpenStorage(appName string) (*gdata.Manager, error) {
	if err := utils.EnsureStorageDir(); err != nil {
		return nil, fmt.Errorf("failed to prepare storage: %w", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage %q: %w", appName, err)
	}
	if path := utils.GetStoragePath(); path != "" {
		log.Printf("[Storage] Using %s", path)
	}
	return manager, nil
}
