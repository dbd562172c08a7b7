/*
 * config.go, part of molframe
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = ".molframe"
	configFileType = "yaml"
	envPrefix      = "MOLFRAME"

	cfgKeyAttributes   = "attributes"
	cfgKeyOxygenType   = "water.oxygen_type"
	cfgKeyHydrogenType = "water.hydrogen_type"
	cfgKeyStartMolID   = "water.start_mol_id"
	cfgKeyStrict       = "water.strict"
	cfgKeyStorePath    = "store.path"
	cfgKeyVerbose      = "verbose"

	defaultAttributes = "Box Masses Atoms Bonds Angles Dihedrals Impropers Types"
	defaultStorePath  = "molframe.db"
)

// loadConfig fills v from the config file, the environment (MOLFRAME_WATER_OXYGEN_TYPE
// and the like) and the defaults. If path is empty, .molframe.yaml is searched for
// in the current directory and then in the home directory; a missing file is not an
// error. A file given explicitly must exist.
func loadConfig(v *viper.Viper, path string) error {
	v.SetDefault(cfgKeyAttributes, defaultAttributes)
	v.SetDefault(cfgKeyOxygenType, 0)
	v.SetDefault(cfgKeyHydrogenType, 0)
	v.SetDefault(cfgKeyStartMolID, 0)
	v.SetDefault(cfgKeyStrict, true)
	v.SetDefault(cfgKeyStorePath, defaultStorePath)
	v.SetDefault(cfgKeyVerbose, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
